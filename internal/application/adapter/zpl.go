package adapter

import (
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/printer"
)

// ZPL geometry in dots (203 dpi, 4x6in label).
const (
	ZPLDefaultWidth  = 812
	ZPLDefaultLength = 1218
	zplMinWidth      = 200
	zplMinLength     = 300
	zplMargin        = 40
)

// ZPLAdapter prints summary fields on a Zebra label.
type ZPLAdapter struct {
	formatter money.Formatter
}

func NewZPL(f money.Formatter) *ZPLAdapter {
	return &ZPLAdapter{formatter: f}
}

func (a *ZPLAdapter) Format() enum.OutputFormat { return enum.OutputFormatZPL }

func (a *ZPLAdapter) Transform(p entity.ReceiptPayload, dc DeviceContext) string {
	s := summarize(p, a.formatter)
	width := atLeast(dc.Int(KeyLabelWidth, ZPLDefaultWidth), zplMinWidth)
	length := atLeast(dc.Int(KeyLabelHeight, ZPLDefaultLength), zplMinLength)

	label := printer.NewZPLLabel(width, length)
	y := zplMargin
	if s.store != "" {
		label.Text(zplMargin, y, 40, s.store)
		y += 60
	}
	label.Text(zplMargin, y, 30, ReceiptMarker)
	y += 50
	if s.order != "" {
		label.Text(zplMargin, y, 30, s.order)
		y += 50
	}
	label.Text(zplMargin, y, 30, "Total: "+s.total)
	y += 70

	if dc.Bool(KeyPrintBarcode, true) && s.number != "" {
		label.Barcode128(zplMargin, y, 80, s.number)
		y += 140
	}
	if dc.Bool(KeyPrintQR, false) && s.qr != "" {
		label.QRCode(zplMargin, y, 6, s.qr)
	}
	return label.End()
}
