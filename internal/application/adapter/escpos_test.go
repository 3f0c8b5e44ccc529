package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

var (
	escposInit = "\x1b\x40"
	escposCut  = "\x1d\x56\x00"
)

func TestESCPOSAdapter_FramedByInitAndCut(t *testing.T) {
	a := NewESCPOS(money.Default())

	for _, p := range []entity.ReceiptPayload{samplePayload(), {}} {
		out := a.Transform(p, DeviceContext{})
		assert.Equal(t, escposInit, out[:2])
		assert.Equal(t, escposCut, out[len(out)-3:])
	}
}

func TestESCPOSAdapter_EndToEnd(t *testing.T) {
	out := NewESCPOS(money.Default()).Transform(samplePayload(), DeviceContext{})

	assert.True(t, strings.HasPrefix(out, escposInit))
	assert.True(t, strings.HasSuffix(out, escposCut))
	assert.Contains(t, out, "Order #1042")
	assert.Contains(t, out, "\nWidget x2.00 19.99\n")
	assert.Contains(t, out, "RECEIPT\n")
}

func TestESCPOSAdapter_StoreFormatting(t *testing.T) {
	out := NewESCPOS(money.NewFormatter(2, ".", ",")).Transform(samplePayload(), DeviceContext{})
	assert.Contains(t, out, "Widget x2,00 19,99")
}

func TestESCPOSAdapter_CodePageKeepsFraming(t *testing.T) {
	p := samplePayload()
	p.Store.Name = "Café"

	out := NewESCPOS(money.Default()).Transform(p, DeviceContext{KeyCodePage: "cp858"})

	assert.True(t, strings.HasPrefix(out, escposInit+"\x1bt\x13"))
	assert.True(t, strings.HasSuffix(out, escposCut))
	assert.Contains(t, out, "Caf\x82")
}

func TestESCPOSAdapter_CharsPerLine(t *testing.T) {
	out := NewESCPOS(money.Default()).Transform(samplePayload(), DeviceContext{KeyCharsPerLine: "48"})
	assert.Contains(t, out, strings.Repeat("-", 48)+"\n")
}

func TestESCPOSAdapter_CutIsAlwaysFull(t *testing.T) {
	out := NewESCPOS(money.Default()).Transform(samplePayload(), DeviceContext{"cut": "partial"})
	assert.True(t, strings.HasSuffix(out, escposCut))
	assert.NotContains(t, out, "\x1d\x56\x01")
}
