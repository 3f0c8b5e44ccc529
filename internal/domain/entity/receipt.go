package entity

import (
	"github.com/shopspring/decimal"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
)

// ReceiptMeta identifies the order a receipt describes and how it was built.
type ReceiptMeta struct {
	OrderID     string           `json:"order_id,omitempty"`
	OrderNumber string           `json:"order_number"`
	Mode        enum.ReceiptMode `json:"mode"`
	CreatedAt   string           `json:"created_at,omitempty"`
	Currency    string           `json:"currency,omitempty"`
}

// ReceiptStore holds the store/business header printed at the top of a receipt.
type ReceiptStore struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
}

// ReceiptTotals carries final aggregates. GrandTotalIncl already folds in
// fees, shipping and tax; consumers never re-derive it.
type ReceiptTotals struct {
	GrandTotalIncl decimal.Decimal `json:"grand_total_incl"`
	SubtotalIncl   decimal.Decimal `json:"subtotal_incl"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	Paid           decimal.Decimal `json:"paid"`
	Due            decimal.Decimal `json:"due"`
}

// ReceiptFiscal holds fiscal authority data. Empty when not applicable.
type ReceiptFiscal struct {
	QRPayload string `json:"qr_payload"`
}

// ReceiptLine represents a single line item on a receipt.
type ReceiptLine struct {
	Name          string          `json:"name"`
	Qty           decimal.Decimal `json:"qty"`
	LineTotalIncl decimal.Decimal `json:"line_total_incl"`
}

// ReceiptPayload is the canonical, format-agnostic receipt record every
// output derives from. It is a value object built per request and never
// persisted by the rendering pipeline.
type ReceiptPayload struct {
	Meta   ReceiptMeta   `json:"meta"`
	Store  ReceiptStore  `json:"store"`
	Totals ReceiptTotals `json:"totals"`
	Fiscal ReceiptFiscal `json:"fiscal"`
	Lines  []ReceiptLine `json:"lines"`
}

// WithMode returns a copy tagged with mode. Lines are copied so the
// receiver stays untouched.
func (p ReceiptPayload) WithMode(mode enum.ReceiptMode) ReceiptPayload {
	out := p
	out.Meta.Mode = mode
	out.Lines = append([]ReceiptLine(nil), p.Lines...)
	return out
}

// IsFiscal reports whether the payload is backed by a stored snapshot.
func (p ReceiptPayload) IsFiscal() bool {
	return p.Meta.Mode == enum.ReceiptModeFiscal
}
