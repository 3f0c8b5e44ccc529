package adapter

import (
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/printer"
)

const starColumns = 32

// StarPRNTAdapter builds a fixed-layout StarPRNT stream.
type StarPRNTAdapter struct {
	formatter money.Formatter
}

func NewStarPRNT(f money.Formatter) *StarPRNTAdapter {
	return &StarPRNTAdapter{formatter: f}
}

func (a *StarPRNTAdapter) Format() enum.OutputFormat { return enum.OutputFormatStarPRNT }

func (a *StarPRNTAdapter) Transform(p entity.ReceiptPayload, _ DeviceContext) string {
	s := summarize(p, a.formatter)
	doc := printer.NewStarDocument().SetAlign(printer.AlignCenter)

	if s.store != "" {
		doc.SetEmphasis(true).SetExpanded(true).
			Text(s.store).
			SetExpanded(false).SetEmphasis(false)
	}
	doc.Text(ReceiptMarker)
	if s.order != "" {
		doc.Text(s.order)
	}

	doc.SetAlign(printer.AlignLeft).Separator('-', starColumns)
	for _, line := range p.Lines {
		doc.Text(line.Name + " x" + a.formatter.Format(line.Qty) + " " + a.formatter.Format(line.LineTotalIncl))
	}
	doc.Separator('-', starColumns)
	doc.SetEmphasis(true).Text("Total " + s.total).SetEmphasis(false)

	return doc.Cut()
}
