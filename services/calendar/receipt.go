package calendar

import (
	"bytes"
	"fmt"

	"barberia/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRCode encodes content as a PNG.
func QRCode(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

// Receipt renders an A4 PDF with the appointment, the customer's contact
// details and a QR code of the calendar link.
func Receipt(appt models.Appointment, ev Event, summary string) ([]byte, error) {
	qrPNG, err := QRCode(GoogleURL(ev))
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, tr("Reserva confirmada"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if summary != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 10, tr(summary), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(110, 8, tr(fmt.Sprintf(
		"Servicio: %s\nFecha: %s\nHora: %s - %s\nLugar: %s\n\nCliente: %s\nTeléfono: %s\nEmail: %s",
		appt.ServiceName,
		ev.Start.Format(models.DateLayout),
		ev.Start.Format(models.TimeSlotLayout),
		ev.End.Format(models.TimeSlotLayout),
		ev.Location,
		appt.CustomerName,
		appt.CustomerPhone,
		appt.CustomerEmail,
	)), "", "L", false)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 140, 50, 50, 50, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, tr("Escanea el código para añadir la cita a tu calendario."), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
