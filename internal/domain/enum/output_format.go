package enum

import "strings"

// OutputFormat identifies a device command language.
type OutputFormat string

const (
	OutputFormatHTML     OutputFormat = "html"
	OutputFormatESCPOS   OutputFormat = "escpos"
	OutputFormatZPL      OutputFormat = "zpl"
	OutputFormatTSPL     OutputFormat = "tspl"
	OutputFormatCPCL     OutputFormat = "cpcl"
	OutputFormatStarPRNT OutputFormat = "starprnt"
)

// OutputFormats lists every supported format in a stable order.
func OutputFormats() []OutputFormat {
	return []OutputFormat{
		OutputFormatHTML,
		OutputFormatESCPOS,
		OutputFormatZPL,
		OutputFormatTSPL,
		OutputFormatCPCL,
		OutputFormatStarPRNT,
	}
}

// ParseOutputFormat maps a format id to a known format. Unknown ids,
// including the empty string, resolve to HTML.
func ParseOutputFormat(s string) OutputFormat {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatESCPOS, OutputFormatZPL, OutputFormatTSPL, OutputFormatCPCL, OutputFormatStarPRNT:
		return f
	default:
		return OutputFormatHTML
	}
}

func (f OutputFormat) String() string {
	return string(f)
}

// ContentType returns the HTTP content type used when serving the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatHTML:
		return "text/html; charset=utf-8"
	case OutputFormatESCPOS, OutputFormatStarPRNT:
		return "application/octet-stream"
	default:
		return "text/plain; charset=utf-8"
	}
}
