package adapter

import (
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/printer"
)

// TSPL geometry in millimetres; positions are in dots.
const (
	TSPLDefaultWidthMM  = 72
	TSPLDefaultHeightMM = 120
	tsplMinMM           = 30
	tsplMargin          = 20
	tsplFont            = "3"
)

// TSPLAdapter prints summary fields on a TSC label.
type TSPLAdapter struct {
	formatter money.Formatter
}

func NewTSPL(f money.Formatter) *TSPLAdapter {
	return &TSPLAdapter{formatter: f}
}

func (a *TSPLAdapter) Format() enum.OutputFormat { return enum.OutputFormatTSPL }

func (a *TSPLAdapter) Transform(p entity.ReceiptPayload, dc DeviceContext) string {
	s := summarize(p, a.formatter)
	width := atLeast(dc.Int(KeyLabelWidth, TSPLDefaultWidthMM), tsplMinMM)
	height := atLeast(dc.Int(KeyLabelHeight, TSPLDefaultHeightMM), tsplMinMM)

	label := printer.NewTSPLLabel(width, height)
	y := tsplMargin
	if s.store != "" {
		label.Text(tsplMargin, y, tsplFont, s.store)
		y += 40
	}
	label.Text(tsplMargin, y, tsplFont, ReceiptMarker)
	y += 40
	if s.order != "" {
		label.Text(tsplMargin, y, tsplFont, s.order)
		y += 40
	}
	label.Text(tsplMargin, y, tsplFont, "Total: "+s.total)
	y += 60

	if dc.Bool(KeyPrintBarcode, true) && s.number != "" {
		label.Barcode128(tsplMargin, y, 80, s.number)
		y += 130
	}
	if dc.Bool(KeyPrintQR, false) && s.qr != "" {
		label.QRCode(tsplMargin, y, 5, s.qr)
	}
	return label.Print()
}
