package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

func TestZPLAdapter_Geometry(t *testing.T) {
	a := NewZPL(money.Default())

	out := a.Transform(samplePayload(), DeviceContext{})
	assert.Contains(t, out, "^PW812\n^LL1218\n")

	out = a.Transform(samplePayload(), DeviceContext{KeyLabelWidth: "100", KeyLabelHeight: 10})
	assert.Contains(t, out, "^PW200\n^LL300\n")

	out = a.Transform(samplePayload(), DeviceContext{KeyLabelWidth: 609.0})
	assert.Contains(t, out, "^PW609\n")
}

func TestZPLAdapter_SanitizesFieldBodies(t *testing.T) {
	p := samplePayload()
	p.Store.Name = "Evil^FS^XZ~JA Shop"
	p.Meta.OrderNumber = "10^42"

	out := NewZPL(money.Default()).Transform(p, DeviceContext{})

	fields := 0
	for _, line := range lines(out) {
		start := strings.Index(line, "^FD")
		if start < 0 {
			continue
		}
		end := strings.LastIndex(line, "^FS")
		require.Greater(t, end, start, line)
		body := line[start+3 : end]
		assert.NotContains(t, body, "^", line)
		assert.NotContains(t, body, "~", line)
		fields++
	}
	assert.GreaterOrEqual(t, fields, 4)
	assert.True(t, strings.HasSuffix(out, "^XZ\n"))
	assert.Equal(t, 1, strings.Count(out, "^XZ"))
}

func TestZPLAdapter_BarcodeAndQRFlags(t *testing.T) {
	a := NewZPL(money.Default())
	p := samplePayload()

	out := a.Transform(p, DeviceContext{})
	assert.Contains(t, out, "^BCN")
	assert.NotContains(t, out, "^BQN")

	out = a.Transform(p, DeviceContext{KeyPrintBarcode: false, KeyPrintQR: true})
	assert.NotContains(t, out, "^BCN")
	assert.NotContains(t, out, "^BQN", "empty QR payload skips the QR command")

	p.Fiscal.QRPayload = "https://tax.example/r/1042"
	out = a.Transform(p, DeviceContext{KeyPrintQR: "yes"})
	assert.Contains(t, out, "^BQN,2,6^FDQA,https://tax.example/r/1042^FS")
}

func TestTSPLAdapter_Geometry(t *testing.T) {
	a := NewTSPL(money.Default())

	assert.True(t, strings.HasPrefix(a.Transform(samplePayload(), DeviceContext{}), "SIZE 72 mm,120 mm\r\n"))
	assert.True(t, strings.HasPrefix(
		a.Transform(samplePayload(), DeviceContext{KeyLabelWidth: 10, KeyLabelHeight: "5"}),
		"SIZE 30 mm,30 mm\r\n",
	))
}

func TestTSPLAdapter_StripsQuotesFromText(t *testing.T) {
	p := samplePayload()
	p.Store.Name = "Bob's \"Best\"\r\nShop"

	out := NewTSPL(money.Default()).Transform(p, DeviceContext{})

	const argPrefix = `,0,1,1,"`
	texts := 0
	for _, line := range lines(out) {
		if !strings.HasPrefix(line, "TEXT ") {
			continue
		}
		i := strings.Index(line, argPrefix)
		require.GreaterOrEqual(t, i, 0, line)
		require.True(t, strings.HasSuffix(line, `"`), line)
		arg := line[i+len(argPrefix) : len(line)-1]
		assert.NotContains(t, arg, `"`, line)
		texts++
	}
	assert.Equal(t, 4, texts)
	assert.Contains(t, out, `"Bob's BestShop"`)
	assert.True(t, strings.HasSuffix(out, "PRINT 1,1\r\n"))
}

func TestTSPLAdapter_QR(t *testing.T) {
	p := samplePayload()
	p.Fiscal.QRPayload = "qr-data"

	out := NewTSPL(money.Default()).Transform(p, DeviceContext{KeyPrintQR: 1})
	assert.Contains(t, out, `QRCODE 20,`)
	assert.Contains(t, out, `"qr-data"`)
	assert.Contains(t, out, `BARCODE 20,`)
}

func TestCPCLAdapter(t *testing.T) {
	a := NewCPCL(money.Default())

	out := a.Transform(samplePayload(), DeviceContext{})
	assert.True(t, strings.HasPrefix(out, "! 0 200 200 700 1\r\nPAGE-WIDTH 576\r\n"))
	assert.Contains(t, out, "BARCODE 128 1 1 60 0 ")
	assert.True(t, strings.HasSuffix(out, "FORM\r\nPRINT\r\n"))

	out = a.Transform(samplePayload(), DeviceContext{KeyLabelWidth: 50, KeyLabelHeight: 50})
	assert.True(t, strings.HasPrefix(out, "! 0 200 200 200 1\r\nPAGE-WIDTH 200\r\n"))

	p := samplePayload()
	p.Store.Name = "Line\nBreak \"Co\""
	p.Fiscal.QRPayload = "qr"
	out = a.Transform(p, DeviceContext{KeyPrintQR: true, KeyPrintBarcode: "off"})
	assert.Contains(t, out, "TEXT 4 0 0 20 LineBreak Co\r\n")
	assert.Contains(t, out, "MA,qr\r\nENDQR\r\n")
	assert.NotContains(t, out, "BARCODE")
}
