package printer

import (
	"fmt"
	"strings"
)

const tsplEOL = "\r\n"

// TSPLLabel builds a TSC TSPL/TSPL2 label program.
type TSPLLabel struct {
	buf strings.Builder
}

// NewTSPLLabel starts a label of the given size in millimetres.
func NewTSPLLabel(widthMM, heightMM int) *TSPLLabel {
	l := &TSPLLabel{}
	l.cmd(fmt.Sprintf("SIZE %d mm,%d mm", widthMM, heightMM))
	l.cmd("GAP 2 mm,0 mm")
	l.cmd("DIRECTION 1")
	l.cmd("CLS")
	return l
}

// Text prints s at x,y (dots) with a built-in font id such as "3".
func (l *TSPLLabel) Text(x, y int, font, s string) *TSPLLabel {
	l.cmd(fmt.Sprintf(`TEXT %d,%d,"%s",0,1,1,"%s"`, x, y, font, SanitizeTSPL(s)))
	return l
}

// Barcode128 prints a Code 128 barcode with human readable text.
func (l *TSPLLabel) Barcode128(x, y, height int, data string) *TSPLLabel {
	l.cmd(fmt.Sprintf(`BARCODE %d,%d,"128",%d,1,0,2,2,"%s"`, x, y, height, SanitizeTSPL(data)))
	return l
}

// QRCode prints a QR code with error correction level M.
func (l *TSPLLabel) QRCode(x, y, cellWidth int, data string) *TSPLLabel {
	l.cmd(fmt.Sprintf(`QRCODE %d,%d,M,%d,A,0,"%s"`, x, y, cellWidth, SanitizeTSPL(data)))
	return l
}

// Print appends the PRINT command and returns the program.
func (l *TSPLLabel) Print() string {
	l.cmd("PRINT 1,1")
	return l.buf.String()
}

func (l *TSPLLabel) cmd(s string) {
	l.buf.WriteString(s)
	l.buf.WriteString(tsplEOL)
}
