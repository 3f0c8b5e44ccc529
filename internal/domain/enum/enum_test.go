package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRenderEngine(t *testing.T) {
	assert.Equal(t, RenderEngineLogicless, ParseRenderEngine("logicless"))
	assert.Equal(t, RenderEngineLogicless, ParseRenderEngine(" LogicLess "))
	assert.Equal(t, RenderEngineLegacy, ParseRenderEngine("anything-else"))
	assert.Equal(t, RenderEngineLegacy, ParseRenderEngine(""))
	assert.Equal(t, RenderEngineLegacy, ParseRenderEngine("legacy"))
}

func TestParseOutputFormat(t *testing.T) {
	for _, f := range OutputFormats() {
		assert.Equal(t, f, ParseOutputFormat(f.String()))
	}
	assert.Equal(t, OutputFormatESCPOS, ParseOutputFormat("ESCPOS"))
	assert.Equal(t, OutputFormatHTML, ParseOutputFormat("pdf"))
	assert.Equal(t, OutputFormatHTML, ParseOutputFormat(""))
}

func TestOutputFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", OutputFormatHTML.ContentType())
	assert.Equal(t, "application/octet-stream", OutputFormatESCPOS.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", OutputFormatZPL.ContentType())
}

func TestParseReceiptMode(t *testing.T) {
	assert.Equal(t, ReceiptModeFiscal, ParseReceiptMode("fiscal"))
	assert.Equal(t, ReceiptModeLive, ParseReceiptMode("live"))
	assert.Equal(t, ReceiptModeLive, ParseReceiptMode("bogus"))
	assert.True(t, ReceiptModeFiscal.IsValid())
	assert.False(t, ReceiptMode("bogus").IsValid())
}

func TestTaxType_JSON(t *testing.T) {
	var tt TaxType
	require.NoError(t, json.Unmarshal([]byte(`"incl"`), &tt))
	assert.True(t, tt.IsInclusive())

	require.NoError(t, json.Unmarshal([]byte(`0`), &tt))
	assert.False(t, tt.IsInclusive())

	b, err := json.Marshal(TaxTypeInclusive)
	require.NoError(t, err)
	assert.JSONEq(t, `"incl"`, string(b))
}

func TestOrderStatus_JSON(t *testing.T) {
	var s OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"on-hold"`), &s))
	assert.Equal(t, OrderStatus(2), s)
	assert.Equal(t, "pending", OrderStatus(42).String())

	b, err := json.Marshal(OrderStatus(3))
	require.NoError(t, err)
	assert.JSONEq(t, `"completed"`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`"unknown"`), &s))
	assert.Equal(t, OrderStatusPending, s)
}
