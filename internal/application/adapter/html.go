package adapter

import (
	"fmt"
	"html"

	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

// HTMLAdapter emits a preview fragment. A caller-supplied "html" context
// value short-circuits rendering and is returned verbatim.
type HTMLAdapter struct {
	formatter money.Formatter
}

func NewHTML(f money.Formatter) *HTMLAdapter {
	return &HTMLAdapter{formatter: f}
}

func (a *HTMLAdapter) Format() enum.OutputFormat { return enum.OutputFormatHTML }

func (a *HTMLAdapter) Transform(p entity.ReceiptPayload, dc DeviceContext) string {
	if raw, ok := dc.String(KeyHTML); ok {
		return raw
	}
	return fmt.Sprintf(
		`<div class="wcpos-receipt"><div class="wcpos-receipt-order">Order #%s</div><div class="wcpos-receipt-total">%s</div></div>`,
		html.EscapeString(p.Meta.OrderNumber),
		html.EscapeString(a.formatter.Format(p.Totals.GrandTotalIncl)),
	)
}
