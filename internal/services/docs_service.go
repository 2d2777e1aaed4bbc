package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/chikukwa/busbooking/internal/domain/models"
	"github.com/chikukwa/busbooking/internal/repositories"
	"github.com/chikukwa/busbooking/internal/utils"
)

// DocsService renders printable booking receipts.
type DocsService struct {
	SettingsRepo repositories.SettingsRepository
	RequestID    string
}

func (s DocsService) Receipt(b models.Booking) ([]byte, string, error) {
	settings, err := s.SettingsRepo.All()
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "docs", "receipt", "ticket_id="+b.TicketID)
	return buildReceiptPDF(b, settings)
}

func buildReceiptPDF(b models.Booking, settings map[string]string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	company := settings["company_name"]
	if company == "" {
		company = "Bus Booking"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, company)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	contact := strings.TrimSpace(settings["contact_phone"] + "  " + settings["contact_email"])
	if contact != "" {
		pdf.Cell(0, 6, contact)
		pdf.Ln(10)
	} else {
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket ID   : %s", b.TicketID),
		fmt.Sprintf("Name        : %s", b.Name),
		fmt.Sprintf("Phone       : %s", b.Phone),
		fmt.Sprintf("From        : %s", b.Departure),
		fmt.Sprintf("To          : %s", b.Destination),
		fmt.Sprintf("Date        : %s", b.Date),
		fmt.Sprintf("Time        : %s", b.Time),
		fmt.Sprintf("Seat        : %d", b.Seat),
		fmt.Sprintf("Fare        : %s", utils.FormatFare(b.Fare)),
		fmt.Sprintf("Status      : %s", strings.ToUpper(string(b.Status))),
		fmt.Sprintf("Booked At   : %s", b.BookedAt.Format(time.RFC3339)),
	}
	if b.Email != "" {
		lines = append(lines[:3], append([]string{fmt.Sprintf("Email       : %s", b.Email)}, lines[3:]...)...)
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please keep your ticket ID safe and arrive 15 minutes before departure time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%s.pdf", b.TicketID)
	return buf.Bytes(), filename, nil
}
