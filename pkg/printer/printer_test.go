package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_InitAndCut(t *testing.T) {
	out := NewDocument(32).Text("hello").Cut().Bytes()

	assert.Equal(t, ESCPOSInit, out[:2])
	assert.Equal(t, ESCPOSFullCut, out[len(out)-3:])
}

func TestDocument_KeyValuePadsToWidth(t *testing.T) {
	d := NewDocument(20)
	d.KeyValue("Total", "19.99")

	line := strings.TrimPrefix(d.String(), string(ESCPOSInit))
	assert.Equal(t, "Total          19.99\n", line)
}

func TestDocument_ItemLine(t *testing.T) {
	d := NewDocument(32).ItemLine("Widget", "2.00", "19.99")
	assert.Contains(t, d.String(), "Widget x2.00 19.99\n")
}

func TestDocument_TextDropsControlBytes(t *testing.T) {
	d := NewDocument(32).Text("A\x1dV\x00B")
	assert.Contains(t, d.String(), "AVB\n")
}

func TestDocument_SelectCodePage(t *testing.T) {
	cp, ok := LookupCodePage("CP858")
	require.True(t, ok)

	out := NewDocument(32).SelectCodePage(cp).Text("€5").Bytes()
	assert.Equal(t, []byte{ESC, '@', ESC, 't', 19, 0xD5, '5', LF}, out)

	cp, ok = LookupCodePage("windows1252")
	require.True(t, ok)
	out = NewDocument(32).SelectCodePage(cp).Text("é").Bytes()
	assert.Equal(t, []byte{ESC, '@', ESC, 't', 16, 0xE9, LF}, out)

	_, ok = LookupCodePage("klingon")
	assert.False(t, ok)
}

func TestDocument_Reset(t *testing.T) {
	d := NewDocument(0)
	assert.Equal(t, 32, d.Width())
	d.Text("x").Reset()
	assert.Equal(t, ESCPOSInit, d.Bytes())
}

func TestSanitizers(t *testing.T) {
	assert.Equal(t, "Shop FS  x", SanitizeZPL("Shop^FS~\nx"))
	assert.Equal(t, "Joes Bar", SanitizeTSPL("Joe\"s\r\n Bar"))
	assert.Equal(t, "ab", SanitizeCPCL("a\"\r\nb"))
	assert.Equal(t, "a@b", SanitizeESCPOS("a\x1b@b"))
}

func TestZPLLabel(t *testing.T) {
	out := NewZPLLabel(812, 1218).
		Text(40, 40, 40, "Bob^FS").
		Barcode128(40, 200, 80, "1042").
		QRCode(40, 400, 6, "https://tax.example/q?a=1").
		End()

	assert.True(t, strings.HasPrefix(out, "^XA\n"))
	assert.True(t, strings.HasSuffix(out, "^XZ\n"))
	assert.Contains(t, out, "^PW812\n^LL1218\n")
	assert.Contains(t, out, "^FDBob FS^FS")
	assert.Contains(t, out, "^BCN,80,Y,N,N^FD1042^FS")
	assert.Contains(t, out, "^BQN,2,6^FDQA,https://tax.example/q?a=1^FS")
}

func TestTSPLLabel(t *testing.T) {
	out := NewTSPLLabel(72, 120).
		Text(20, 20, "3", `Joe's "Bar"`).
		Barcode128(20, 200, 80, "1042").
		Print()

	assert.True(t, strings.HasPrefix(out, "SIZE 72 mm,120 mm\r\n"))
	assert.Contains(t, out, `TEXT 20,20,"3",0,1,1,"Joe's Bar"`)
	assert.Contains(t, out, `BARCODE 20,200,"128",80,1,0,2,2,"1042"`)
	assert.True(t, strings.HasSuffix(out, "PRINT 1,1\r\n"))
}

func TestCPCLLabel(t *testing.T) {
	out := NewCPCLLabel(576, 700).
		Center().
		Text(4, 0, 0, 20, "Line\nBreak").
		QRCode(0, 300, 4, "qr").
		Print()

	assert.True(t, strings.HasPrefix(out, "! 0 200 200 700 1\r\nPAGE-WIDTH 576\r\n"))
	assert.Contains(t, out, "TEXT 4 0 0 20 LineBreak\r\n")
	assert.Contains(t, out, "B QR 0 300 M 2 U 4\r\nMA,qr\r\nENDQR\r\n")
	assert.True(t, strings.HasSuffix(out, "FORM\r\nPRINT\r\n"))
}

func TestStarDocument(t *testing.T) {
	out := NewStarDocument().SetEmphasis(true).Text("Shop").SetEmphasis(false).Cut()

	assert.True(t, strings.HasPrefix(out, string(StarInit)))
	assert.True(t, strings.HasSuffix(out, string(StarFeedFullCut)))
	assert.Contains(t, out, "\x1bEShop\n\x1bF")
}
