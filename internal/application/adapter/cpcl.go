package adapter

import (
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/printer"
)

// CPCL geometry in dots.
const (
	CPCLDefaultWidth  = 576
	CPCLDefaultHeight = 700
	cpclMin           = 200
)

// CPCLAdapter prints summary fields on a Zebra mobile printer.
type CPCLAdapter struct {
	formatter money.Formatter
}

func NewCPCL(f money.Formatter) *CPCLAdapter {
	return &CPCLAdapter{formatter: f}
}

func (a *CPCLAdapter) Format() enum.OutputFormat { return enum.OutputFormatCPCL }

func (a *CPCLAdapter) Transform(p entity.ReceiptPayload, dc DeviceContext) string {
	s := summarize(p, a.formatter)
	width := atLeast(dc.Int(KeyLabelWidth, CPCLDefaultWidth), cpclMin)
	height := atLeast(dc.Int(KeyLabelHeight, CPCLDefaultHeight), cpclMin)

	label := printer.NewCPCLLabel(width, height).Center()
	y := 20
	if s.store != "" {
		label.Text(4, 0, 0, y, s.store)
		y += 50
	}
	label.Text(4, 0, 0, y, ReceiptMarker)
	y += 50
	if s.order != "" {
		label.Text(7, 0, 0, y, s.order)
		y += 40
	}
	label.Text(7, 0, 0, y, "Total: "+s.total)
	y += 50

	if dc.Bool(KeyPrintBarcode, true) && s.number != "" {
		label.Barcode128(0, y, 60, s.number)
		y += 90
	}
	if dc.Bool(KeyPrintQR, false) && s.qr != "" {
		label.Left().QRCode(20, y, 4, s.qr)
	}
	return label.Print()
}
