package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
)

func TestReceiptPayload_WithModeCopiesLines(t *testing.T) {
	p := ReceiptPayload{
		Meta:  ReceiptMeta{OrderNumber: "1042", Mode: enum.ReceiptModeFiscal},
		Lines: []ReceiptLine{{Name: "Widget", Qty: decimal.NewFromInt(2)}},
	}

	live := p.WithMode(enum.ReceiptModeLive)
	live.Lines[0].Name = "changed"

	assert.True(t, p.IsFiscal())
	assert.False(t, live.IsFiscal())
	assert.Equal(t, "Widget", p.Lines[0].Name)
}

func TestReceiptPayload_JSONShape(t *testing.T) {
	p := ReceiptPayload{
		Meta:   ReceiptMeta{OrderNumber: "1042", Mode: enum.ReceiptModeLive},
		Store:  ReceiptStore{Name: "Corner Shop"},
		Totals: ReceiptTotals{GrandTotalIncl: decimal.RequireFromString("19.99")},
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "1042", m["meta"].(map[string]any)["order_number"])
	assert.Equal(t, "live", m["meta"].(map[string]any)["mode"])
	assert.Equal(t, "19.99", m["totals"].(map[string]any)["grand_total_incl"])
}

func TestStoreSettings_ScanAndFormatter(t *testing.T) {
	var ss StoreSettings
	require.NoError(t, ss.Scan([]byte(`{"price_decimals":0,"thousand_separator":".","decimal_separator":","}`)))

	f := ss.Formatter()
	assert.Equal(t, "1.235", f.Format(decimal.RequireFromString("1234.5")))

	require.NoError(t, ss.Scan(nil))
	assert.Equal(t, "1,234.50", ss.Formatter().Format(decimal.RequireFromString("1234.5")))

	assert.Error(t, ss.Scan(42))
}

func TestOrder_MarshalJSONConvertsCents(t *testing.T) {
	o := Order{Number: "1042", Total: 1999}
	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"total":"19.99"`)
}

func TestReceiptTemplate_HasContent(t *testing.T) {
	assert.False(t, ReceiptTemplate{Content: "  \n"}.HasContent())
	assert.True(t, ReceiptTemplate{Content: "<p>x</p>"}.HasContent())
}
