package printer

import (
	"fmt"
	"strings"
)

const cpclEOL = "\r\n"

// CPCLLabel builds a Zebra mobile CPCL label session.
type CPCLLabel struct {
	buf strings.Builder
}

// NewCPCLLabel opens a session at 200 dpi with the given page geometry in dots.
func NewCPCLLabel(widthDots, heightDots int) *CPCLLabel {
	l := &CPCLLabel{}
	l.cmd(fmt.Sprintf("! 0 200 200 %d 1", heightDots))
	l.cmd(fmt.Sprintf("PAGE-WIDTH %d", widthDots))
	return l
}

// Center aligns subsequent fields to the page centre.
func (l *CPCLLabel) Center() *CPCLLabel {
	l.cmd("CENTER")
	return l
}

// Left restores left alignment.
func (l *CPCLLabel) Left() *CPCLLabel {
	l.cmd("LEFT")
	return l
}

// Text prints s with a resident font and size at x,y.
func (l *CPCLLabel) Text(font, size, x, y int, s string) *CPCLLabel {
	l.cmd(fmt.Sprintf("TEXT %d %d %d %d %s", font, size, x, y, SanitizeCPCL(s)))
	return l
}

// Barcode128 prints a horizontal Code 128 barcode.
func (l *CPCLLabel) Barcode128(x, y, height int, data string) *CPCLLabel {
	l.cmd(fmt.Sprintf("BARCODE 128 1 1 %d %d %d %s", height, x, y, SanitizeCPCL(data)))
	return l
}

// QRCode prints a model 2 QR code with the given unit size.
func (l *CPCLLabel) QRCode(x, y, unit int, data string) *CPCLLabel {
	l.cmd(fmt.Sprintf("B QR %d %d M 2 U %d", x, y, unit))
	l.cmd("MA," + SanitizeCPCL(data))
	l.cmd("ENDQR")
	return l
}

// Print closes the session with FORM and PRINT and returns the commands.
func (l *CPCLLabel) Print() string {
	l.cmd("FORM")
	l.cmd("PRINT")
	return l.buf.String()
}

func (l *CPCLLabel) cmd(s string) {
	l.buf.WriteString(s)
	l.buf.WriteString(cpclEOL)
}
