// Package printer builds command streams for receipt and label printers.
// It only produces bytes; delivering them to a device is up to the caller.
package printer

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
)

// Fixed ESC/POS protocol sequences.
var (
	ESCPOSInit    = []byte{ESC, '@'}
	ESCPOSFullCut = []byte{GS, 'V', 0x00}
)

// CodePage pairs a character table number (ESC t n) with its encoder.
type CodePage struct {
	Number  byte
	Charmap *charmap.Charmap
}

// codePages lists the tables selectable by name.
var codePages = map[string]CodePage{
	"cp437":       {Number: 0, Charmap: charmap.CodePage437},
	"cp858":       {Number: 19, Charmap: charmap.CodePage858},
	"windows1252": {Number: 16, Charmap: charmap.Windows1252},
}

// LookupCodePage returns the code page registered under name.
func LookupCodePage(name string) (CodePage, bool) {
	cp, ok := codePages[strings.ToLower(name)]
	return cp, ok
}

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf     bytes.Buffer
	width   int // print width in characters (default 32 for 58mm, 48 for 80mm)
	encoder *encoding.Encoder
}

// NewDocument creates a new ESC/POS document with the given character width.
// Common widths: 32 for 58mm paper, 48 for 80mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the configured characters per line.
func (d *Document) Width() int {
	return d.width
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write(ESCPOSInit)
	return d
}

// SelectCodePage sends ESC t n and encodes all following text with the table.
// Runes the table cannot represent are replaced rather than failing.
func (d *Document) SelectCodePage(cp CodePage) *Document {
	d.buf.Write([]byte{ESC, 't', cp.Number})
	d.encoder = encoding.ReplaceUnsupported(cp.Charmap.NewEncoder())
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft or AlignCenter.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size, FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.writeText(SanitizeESCPOS(s))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line (e.g. "--------------------------------").
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Subtotal           $100.00"
func (d *Document) KeyValue(key, value string) *Document {
	key, value = SanitizeESCPOS(key), SanitizeESCPOS(value)
	spaces := d.width - len([]rune(key)) - len([]rune(value))
	if spaces < 1 {
		spaces = 1
	}
	d.writeText(key + strings.Repeat(" ", spaces) + value)
	d.buf.WriteByte(LF)
	return d
}

// ItemLine prints a receipt item line: name, quantity and line total.
// Example: "Widget x2.00 19.99"
func (d *Document) ItemLine(name, qty, total string) *Document {
	return d.Text(name + " x" + qty + " " + total)
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write(ESCPOSFullCut)
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// String returns the byte stream as a string without re-encoding.
func (d *Document) String() string {
	return d.buf.String()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.encoder = nil
	d.Init()
	return d
}

func (d *Document) writeText(s string) {
	if d.encoder == nil {
		d.buf.WriteString(s)
		return
	}
	encoded, _, err := transform.String(d.encoder, s)
	if err != nil {
		d.buf.WriteString(s)
		return
	}
	d.buf.WriteString(encoded)
}
