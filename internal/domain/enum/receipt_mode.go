package enum

import "strings"

// ReceiptMode selects how the canonical payload is assembled.
type ReceiptMode string

const (
	// ReceiptModeLive recomputes the receipt from the order's current state.
	ReceiptModeLive ReceiptMode = "live"
	// ReceiptModeFiscal reproduces the snapshot captured at sale time.
	ReceiptModeFiscal ReceiptMode = "fiscal"
)

// ParseReceiptMode maps a configuration string to a mode. Anything that is
// not "fiscal" is live.
func ParseReceiptMode(s string) ReceiptMode {
	switch ReceiptMode(strings.ToLower(strings.TrimSpace(s))) {
	case ReceiptModeFiscal:
		return ReceiptModeFiscal
	default:
		return ReceiptModeLive
	}
}

func (m ReceiptMode) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known modes.
func (m ReceiptMode) IsValid() bool {
	return m == ReceiptModeLive || m == ReceiptModeFiscal
}
