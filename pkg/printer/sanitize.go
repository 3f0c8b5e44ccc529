package printer

import (
	"strings"
	"unicode"
)

var (
	zplReplacer    = strings.NewReplacer("^", " ", "~", " ", "\r\n", " ", "\n", " ", "\r", " ")
	quotedArgStrip = strings.NewReplacer(`"`, "", "\r", "", "\n", "")
)

// SanitizeZPL replaces the ZPL command prefixes (^ and ~) and line breaks.
// An unescaped ^ inside ^FD...^FS ends the field and corrupts the label.
func SanitizeZPL(s string) string {
	return zplReplacer.Replace(s)
}

// SanitizeTSPL strips double quotes and line breaks, which terminate a
// quoted TSPL argument or the command itself.
func SanitizeTSPL(s string) string {
	return quotedArgStrip.Replace(s)
}

// SanitizeCPCL strips double quotes and line breaks; CPCL commands are
// line-delimited.
func SanitizeCPCL(s string) string {
	return quotedArgStrip.Replace(s)
}

// SanitizeESCPOS drops control characters so text cannot smuggle commands
// into the byte stream.
func SanitizeESCPOS(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
