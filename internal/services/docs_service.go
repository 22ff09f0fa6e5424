package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/pricing"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking invoices as PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

// GenerateInvoice builds the invoice PDF for a booking and returns the
// document bytes plus a download filename.
func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(booking)
}

func (s DocsService) loadBooking(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.BookingRepo.GetByID(id)
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "GIRAFFE CABS - INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", b.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	serviceName := string(b.ServiceType)
	if def, ok := pricing.Service(b.ServiceType); ok {
		serviceName = def.Name
	}

	lines := []string{
		fmt.Sprintf("Service    : %s", safe(serviceName, "-")),
		fmt.Sprintf("Route      : %s -> %s", safe(b.PickupLocation, "-"), safe(b.DropoffLocation, "-")),
		fmt.Sprintf("Pickup     : %s %s", safe(b.PickupDate, "-"), safe(b.PickupTime, "-")),
		fmt.Sprintf("Passengers : %d", b.Passengers),
		fmt.Sprintf("Booking No : #%d", b.ID),
	}
	if b.DistanceKm > 0 {
		lines = append(lines, fmt.Sprintf("Distance   : %d km (estimated)", b.DistanceKm))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatLKR(b.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Distance and total are advisory until confirmed by Giraffe Cabs staff. Payment is due on confirmation.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
