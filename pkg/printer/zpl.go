package printer

import (
	"fmt"
	"strings"
)

// ZPLLabel builds a Zebra ZPL II label. Every field value is sanitized
// before it lands between ^FD and ^FS.
type ZPLLabel struct {
	buf strings.Builder
}

// NewZPLLabel starts a label of the given print width and length in dots.
func NewZPLLabel(widthDots, lengthDots int) *ZPLLabel {
	l := &ZPLLabel{}
	l.line("^XA")
	l.line("^CI28")
	l.line(fmt.Sprintf("^PW%d", widthDots))
	l.line(fmt.Sprintf("^LL%d", lengthDots))
	return l
}

// Text places a scalable font field at x,y with the given character height.
func (l *ZPLLabel) Text(x, y, height int, s string) *ZPLLabel {
	l.line(fmt.Sprintf("^FO%d,%d^A0N,%d,%d^FD%s^FS", x, y, height, height, SanitizeZPL(s)))
	return l
}

// Barcode128 places a Code 128 barcode with its interpretation line below.
func (l *ZPLLabel) Barcode128(x, y, height int, data string) *ZPLLabel {
	l.line(fmt.Sprintf("^FO%d,%d^BY2^BCN,%d,Y,N,N^FD%s^FS", x, y, height, SanitizeZPL(data)))
	return l
}

// QRCode places a model 2 QR code; magnification runs from 1 to 10.
func (l *ZPLLabel) QRCode(x, y, magnification int, data string) *ZPLLabel {
	l.line(fmt.Sprintf("^FO%d,%d^BQN,2,%d^FDQA,%s^FS", x, y, magnification, SanitizeZPL(data)))
	return l
}

// End closes the label format and returns the command string.
func (l *ZPLLabel) End() string {
	l.line("^XZ")
	return l.buf.String()
}

func (l *ZPLLabel) line(s string) {
	l.buf.WriteString(s)
	l.buf.WriteByte('\n')
}
