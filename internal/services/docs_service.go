package services

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/phpdave11/gofpdf"

	"yatra/internal/domain"
	"yatra/internal/ledger"
	"yatra/internal/utils"
)

// DocsService renders the printable documents: a seat manifest per bus
// for the driver and a payment receipt per booking.
type DocsService struct {
	Ledger    *ledger.Ledger
	RequestID string
}

func (s DocsService) GenerateBusManifest(busID int64) ([]byte, string, error) {
	bus, ok := s.Ledger.GetBus(busID)
	if !ok {
		return nil, "", domain.NotFoundError{Resource: "bus", ID: busID}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_manifest", fmt.Sprintf("bus_id=%d", busID))

	bookings := s.Ledger.ListBookings(busID)
	trip := s.Ledger.TripSettings()
	return buildManifestPDF(bus, bookings, trip)
}

func (s DocsService) GenerateReceipt(bookingID int64) ([]byte, string, error) {
	booking, ok := s.Ledger.GetBooking(bookingID)
	if !ok {
		return nil, "", domain.NotFoundError{Resource: "booking", ID: bookingID}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))

	busName := "N/A"
	if bus, ok := s.Ledger.GetBus(booking.BusID); ok {
		busName = bus.Name
	}
	trip := s.Ledger.TripSettings()
	return buildReceiptPDF(booking, busName, trip)
}

type manifestSeat struct {
	Seat   int
	Name   string
	Age    int
	Phone  string
	Status domain.PaymentStatus
}

func buildManifestPDF(bus domain.Bus, bookings []domain.Booking, trip domain.TripSettings) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Manifest", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS MANIFEST")
	pdf.Ln(12)

	occupied := 0
	var seats []manifestSeat
	for _, b := range bookings {
		occupied += len(b.Seats)
		for i, seat := range b.Seats {
			entry := manifestSeat{Seat: seat, Status: b.Status}
			if i < len(b.Members) {
				entry.Name = b.Members[i].Name
				entry.Age = b.Members[i].Age
				entry.Phone = b.Members[i].Phone
			}
			seats = append(seats, entry)
		}
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].Seat < seats[j].Seat })

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Bus         : %s", bus.Name),
		fmt.Sprintf("Capacity    : %d (%d occupied, %d free)", bus.Capacity, occupied, bus.Capacity-occupied),
		fmt.Sprintf("Destination : %s", safe(trip.Destination, "-")),
		fmt.Sprintf("Trip Date   : %s", safe(utils.FormatTripDate(trip.NextTripDate), "-")),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(18, 8, "Seat", "1", 0, "C", false, 0, "")
	pdf.CellFormat(62, 8, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(15, 8, "Age", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Phone", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Payment", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range seats {
		pdf.CellFormat(18, 7, fmt.Sprintf("%d", row.Seat), "1", 0, "C", false, 0, "")
		pdf.CellFormat(62, 7, safe(row.Name, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", row.Age), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, safe(row.Phone, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, string(row.Status), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("MANIFEST_%s.pdf", safeFilenamePart(bus.Name))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(b domain.Booking, busName string, trip domain.TripSettings) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	seatList := make([]string, len(b.Seats))
	for i, s := range b.Seats {
		seatList[i] = fmt.Sprintf("%d", s)
	}
	lines := []string{
		fmt.Sprintf("Receipt No   : RCP-%d", b.ID),
		fmt.Sprintf("Booking      : %s", b.Label),
		fmt.Sprintf("Bus          : %s", busName),
		fmt.Sprintf("Seats        : %s", strings.Join(seatList, ", ")),
		fmt.Sprintf("Destination  : %s", safe(trip.Destination, "-")),
		fmt.Sprintf("Trip Date    : %s", safe(utils.FormatTripDate(trip.NextTripDate), "-")),
		fmt.Sprintf("Registered   : %s", safe(b.RegisteredAt, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Members:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, m := range b.Members {
		seat := "-"
		if i < len(b.Seats) {
			seat = fmt.Sprintf("%d", b.Seats[i])
		}
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s (age %d) - seat %s", i+1, m.Name, m.Age, seat))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(b.TotalAmount))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Paid: "+utils.FormatINR(b.PaidAmount))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Outstanding: %s (%s)", utils.FormatINR(b.Outstanding()), b.Status))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry this receipt and a valid ID on the day of departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", b.ID, safeFilenamePart(b.Label))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
