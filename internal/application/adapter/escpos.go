package adapter

import (
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/printer"
)

// DefaultCharsPerLine fits 58mm paper.
const DefaultCharsPerLine = 32

// ESCPOSAdapter builds an ESC/POS stream framed by ESC @ and a full cut.
type ESCPOSAdapter struct {
	formatter money.Formatter
}

func NewESCPOS(f money.Formatter) *ESCPOSAdapter {
	return &ESCPOSAdapter{formatter: f}
}

func (a *ESCPOSAdapter) Format() enum.OutputFormat { return enum.OutputFormatESCPOS }

func (a *ESCPOSAdapter) Transform(p entity.ReceiptPayload, dc DeviceContext) string {
	s := summarize(p, a.formatter)
	doc := printer.NewDocument(atLeast(dc.Int(KeyCharsPerLine, DefaultCharsPerLine), 16))

	if name, ok := dc.String(KeyCodePage); ok {
		if cp, found := printer.LookupCodePage(name); found {
			doc.SelectCodePage(cp)
		}
	}

	// Header
	doc.SetAlign(printer.AlignCenter)
	if s.store != "" {
		doc.SetBold(true).SetFontSize(printer.FontDouble).
			Text(s.store).
			SetFontSize(printer.FontNormal).SetBold(false)
	}
	for _, extra := range []string{p.Store.Address, p.Store.Phone} {
		if extra != "" {
			doc.Text(extra)
		}
	}
	if p.Store.TaxID != "" {
		doc.Text("Tax ID: " + p.Store.TaxID)
	}
	doc.Text(ReceiptMarker)
	if s.order != "" {
		doc.Text(s.order)
	}

	// Lines
	doc.SetAlign(printer.AlignLeft).Separator('-')
	for _, line := range p.Lines {
		doc.ItemLine(line.Name, a.formatter.Format(line.Qty), a.formatter.Format(line.LineTotalIncl))
	}
	doc.Separator('-')

	// Totals
	doc.SetBold(true).KeyValue("Total", s.total).SetBold(false)
	if !p.Totals.Due.IsZero() {
		doc.KeyValue("Paid", a.formatter.Format(p.Totals.Paid)).
			KeyValue("Due", a.formatter.Format(p.Totals.Due))
	}

	doc.FeedLines(3).Cut()
	return doc.String()
}
