// Package adapter turns a canonical receipt payload into the exact bytes or
// markup a device expects. Adapters are pure: they never perform I/O and
// never mutate the payload or the device context.
package adapter

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

// Device context keys understood by the adapters.
const (
	KeyLabelWidth   = "label_width"
	KeyLabelHeight  = "label_height"
	KeyPrintQR      = "print_qr"
	KeyPrintBarcode = "print_barcode"
	KeyHTML         = "html"
	KeyCharsPerLine = "chars_per_line"
	KeyCodePage     = "codepage"
)

// ReceiptMarker is printed under the store name on every device output.
const ReceiptMarker = "RECEIPT"

// Adapter transforms a payload into a device command string.
type Adapter interface {
	Format() enum.OutputFormat
	Transform(p entity.ReceiptPayload, dc DeviceContext) string
}

// New returns the adapter for format. Formats outside the closed set fall
// through to HTML.
func New(format enum.OutputFormat, f money.Formatter) Adapter {
	switch format {
	case enum.OutputFormatESCPOS:
		return NewESCPOS(f)
	case enum.OutputFormatZPL:
		return NewZPL(f)
	case enum.OutputFormatTSPL:
		return NewTSPL(f)
	case enum.OutputFormatCPCL:
		return NewCPCL(f)
	case enum.OutputFormatStarPRNT:
		return NewStarPRNT(f)
	default:
		return NewHTML(f)
	}
}

// ForID parses a format id and returns its adapter.
func ForID(id string, f money.Formatter) Adapter {
	return New(enum.ParseOutputFormat(id), f)
}

// DeviceContext is the flat per-invocation configuration of an adapter.
// Values of any type are coerced; malformed values fall back to defaults.
type DeviceContext map[string]any

// Has reports whether key is present, even with a nil value.
func (dc DeviceContext) Has(key string) bool {
	_, ok := dc[key]
	return ok
}

// Int returns key coerced to int, or def when absent or not numeric.
func (dc DeviceContext) Int(key string, def int) int {
	v, ok := dc[key]
	if !ok || v == nil {
		return def
	}
	if s, isStr := v.(string); isStr {
		v = strings.TrimSpace(s)
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil {
			return def
		}
		return int(f)
	}
	return i
}

// Bool returns key coerced to bool, or def when absent or unparseable.
// "yes", "on", "no" and "off" are accepted alongside strconv forms.
func (dc DeviceContext) Bool(key string, def bool) bool {
	v, ok := dc[key]
	if !ok || v == nil {
		return def
	}
	if s, isStr := v.(string); isStr {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "on", "y":
			return true
		case "no", "off", "n", "":
			return false
		}
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// String returns key coerced to string and whether the key was present.
func (dc DeviceContext) String(key string) (string, bool) {
	v, ok := dc[key]
	if !ok {
		return "", false
	}
	return cast.ToString(v), true
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// summary holds the fields every label and receipt output prints.
type summary struct {
	store  string
	number string
	order  string
	total  string
	qr     string
}

func summarize(p entity.ReceiptPayload, f money.Formatter) summary {
	s := summary{
		store:  p.Store.Name,
		number: p.Meta.OrderNumber,
		total:  f.Format(p.Totals.GrandTotalIncl),
		qr:     p.Fiscal.QRPayload,
	}
	if s.number != "" {
		s.order = "Order #" + s.number
	}
	return s
}
