package printer

import (
	"bytes"
	"strings"
)

// Fixed StarPRNT sequences.
var (
	StarInit        = []byte{ESC, '@'}
	StarFeedFullCut = []byte{ESC, 'd', 0x02}
)

// StarDocument builds a Star Micronics StarPRNT command stream.
type StarDocument struct {
	buf bytes.Buffer
}

// NewStarDocument starts a document with ESC @.
func NewStarDocument() *StarDocument {
	d := &StarDocument{}
	d.buf.Write(StarInit)
	return d
}

// SetAlign sends ESC GS a n.
func (d *StarDocument) SetAlign(align int) *StarDocument {
	d.buf.Write([]byte{ESC, GS, 'a', byte(align)})
	return d
}

// SetEmphasis toggles emphasized printing (ESC E / ESC F).
func (d *StarDocument) SetEmphasis(on bool) *StarDocument {
	if on {
		d.buf.Write([]byte{ESC, 'E'})
	} else {
		d.buf.Write([]byte{ESC, 'F'})
	}
	return d
}

// SetExpanded selects double height and width (ESC i 1 1) or normal size.
func (d *StarDocument) SetExpanded(on bool) *StarDocument {
	n := byte(0)
	if on {
		n = 1
	}
	d.buf.Write([]byte{ESC, 'i', n, n})
	return d
}

// Text writes a line followed by LF.
func (d *StarDocument) Text(s string) *StarDocument {
	d.buf.WriteString(SanitizeESCPOS(s))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a row of char across width columns.
func (d *StarDocument) Separator(char byte, width int) *StarDocument {
	d.buf.WriteString(strings.Repeat(string(char), width))
	d.buf.WriteByte(LF)
	return d
}

// Cut feeds and performs a full cut (ESC d 2) and returns the stream.
func (d *StarDocument) Cut() string {
	d.buf.Write(StarFeedFullCut)
	return d.buf.String()
}
