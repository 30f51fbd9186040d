package ledger

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"yatra/internal/domain"
	"yatra/internal/utils"
)

const activityLimit = 10

// Ledger is the authoritative in-memory store of buses and bookings.
// A single mutex serializes every command; seat assignment is a
// read-then-write and must not interleave.
type Ledger struct {
	mu         sync.Mutex
	buses      []domain.Bus
	bookings   []*domain.Booking
	pricing    domain.Pricing
	trip       domain.TripSettings
	activities []string
	nextID     int64

	now func() time.Time
}

// New returns an empty ledger with default pricing.
func New() *Ledger {
	return &Ledger{
		pricing: domain.DefaultPricing(),
		nextID:  1,
		now:     time.Now,
	}
}

// CreateBookingParams carries one createBooking command. Seats may be
// nil or empty to request auto-assignment. PaymentStatus is accepted
// for boundary compatibility but the stored status is always derived
// from the amounts.
type CreateBookingParams struct {
	Label         string
	Members       []domain.Person
	BusID         int64
	Seats         []int
	PaymentStatus string
	PaidAmount    int64
}

// AddBus registers a bus with a fixed capacity. IDs are assigned as
// max(existing)+1, starting at 1 for an empty fleet.
func (l *Ledger) AddBus(name string, capacity int) (domain.Bus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Bus{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if capacity <= 0 {
		return domain.Bus{}, domain.ValidationError{Field: "capacity", Msg: "must be a positive number"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var maxID int64
	for _, b := range l.buses {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	bus := domain.Bus{ID: maxID + 1, Name: name, Capacity: capacity}
	l.buses = append(l.buses, bus)
	l.recordActivity(fmt.Sprintf("%s added to the fleet", bus.Name))
	return bus, nil
}

// CreateBooking validates and stores a booking atomically: seats, fares
// and payment all commit together or the ledger is left untouched.
func (l *Ledger) CreateBooking(p CreateBookingParams) (domain.Booking, error) {
	label := strings.TrimSpace(p.Label)
	if label == "" {
		return domain.Booking{}, domain.ValidationError{Field: "label", Msg: "is required"}
	}
	if len(p.Members) == 0 {
		return domain.Booking{}, domain.ValidationError{Field: "members", Msg: "at least one member is required"}
	}
	for i, m := range p.Members {
		if strings.TrimSpace(m.Name) == "" {
			return domain.Booking{}, domain.ValidationError{Field: fmt.Sprintf("members[%d].name", i), Msg: "is required"}
		}
		if m.Age < 1 || m.Age > 120 {
			return domain.Booking{}, domain.ValidationError{Field: fmt.Sprintf("members[%d].age", i), Msg: "must be between 1 and 120"}
		}
	}
	if p.PaidAmount < 0 {
		return domain.Booking{}, domain.ValidationError{Field: "paidAmount", Msg: "must not be negative"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bus, ok := l.busByID(p.BusID)
	if !ok {
		return domain.Booking{}, domain.NotFoundError{Resource: "bus", ID: p.BusID}
	}

	seats, err := l.assignSeats(bus, p.Seats, len(p.Members))
	if err != nil {
		return domain.Booking{}, err
	}

	var total int64
	for _, m := range p.Members {
		total += domain.FareFor(m.Age, l.pricing)
	}

	booking := &domain.Booking{
		ID:           l.nextID,
		Label:        label,
		Members:      append([]domain.Person(nil), p.Members...),
		BusID:        bus.ID,
		Seats:        append([]int(nil), seats...),
		TotalAmount:  total,
		PaidAmount:   p.PaidAmount,
		Status:       domain.DeriveStatus(p.PaidAmount, total),
		RegisteredAt: utils.FormatDate(l.now()),
	}
	l.nextID++
	l.bookings = append(l.bookings, booking)
	l.recordActivity(fmt.Sprintf("%s registered for %s, seat %s", booking.Label, bus.Name, joinSeats(booking.Seats)))
	return *booking, nil
}

// UpdatePayment records a new paid amount. The caller-supplied status
// is informational only; the stored status is re-derived from the
// amounts. An activity entry is emitted only when the amount changed.
func (l *Ledger) UpdatePayment(bookingID int64, status string, amount int64) (domain.Booking, error) {
	if amount < 0 {
		return domain.Booking{}, domain.ValidationError{Field: "amountPaid", Msg: "must not be negative"}
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookingByID(bookingID)
	if !ok {
		return domain.Booking{}, domain.NotFoundError{Resource: "booking", ID: bookingID}
	}

	oldAmount := booking.PaidAmount
	booking.PaidAmount = amount
	booking.Status = domain.DeriveStatus(amount, booking.TotalAmount)
	if amount != oldAmount {
		l.recordActivity(fmt.Sprintf("Payment updated for %s - %s", booking.Label, utils.FormatINR(amount)))
	}
	return *booking, nil
}

// RemoveBooking deletes a booking, freeing its seats for reuse.
func (l *Ledger) RemoveBooking(bookingID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, b := range l.bookings {
		if b.ID != bookingID {
			continue
		}
		busName := "the trip"
		if bus, ok := l.busByID(b.BusID); ok {
			busName = bus.Name
		}
		l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
		l.recordActivity(fmt.Sprintf("%s was removed from %s", b.Label, busName))
		return nil
	}
	return domain.NotFoundError{Resource: "booking", ID: bookingID}
}

// ListBookings returns bookings in insertion order, optionally filtered
// by bus. busID 0 means all buses.
func (l *Ledger) ListBookings(busID int64) []domain.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		if busID != 0 && b.BusID != busID {
			continue
		}
		out = append(out, copyBooking(b))
	}
	return out
}

// GetBooking returns a copy of one booking.
func (l *Ledger) GetBooking(bookingID int64) (domain.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.bookingByID(bookingID); ok {
		return copyBooking(b), true
	}
	return domain.Booking{}, false
}

// GetBus returns a bus by id.
func (l *Ledger) GetBus(busID int64) (domain.Bus, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busByID(busID)
}

// Buses returns the fleet in creation order.
func (l *Ledger) Buses() []domain.Bus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Bus(nil), l.buses...)
}

// Occupancy returns the number of claimed seats on a bus.
func (l *Ledger) Occupancy(busID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.occupiedCount(busID)
}

// SeatOccupant identifies the booking holding a seat.
type SeatOccupant struct {
	BookingID int64  `json:"bookingId"`
	Label     string `json:"label"`
}

// SeatMap maps occupied seat numbers to their bookings. Seats absent
// from the map are free. Unknown buses yield an empty map.
func (l *Ledger) SeatMap(busID int64) map[int]SeatOccupant {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := map[int]SeatOccupant{}
	for _, b := range l.bookings {
		if b.BusID != busID {
			continue
		}
		for _, s := range b.Seats {
			out[s] = SeatOccupant{BookingID: b.ID, Label: b.Label}
		}
	}
	return out
}

// UpdatePricing replaces the fare table. Existing bookings keep the
// totals computed when they were created.
func (l *Ledger) UpdatePricing(p domain.Pricing) error {
	if p.AdultFare <= 0 || p.ChildFare <= 0 || p.SeniorFare <= 0 {
		return domain.ValidationError{Field: "pricing", Msg: "fares must be positive"}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pricing = p
	l.recordActivity(fmt.Sprintf("Ticket pricing updated - Adult: %s, Child: %s, Senior: %s",
		utils.FormatINR(p.AdultFare), utils.FormatINR(p.ChildFare), utils.FormatINR(p.SeniorFare)))
	return nil
}

// UpdateTripSettings replaces the trip metadata. Blank fields keep
// their current value, matching the source's settings form.
func (l *Ledger) UpdateTripSettings(s domain.TripSettings) (domain.TripSettings, error) {
	date := strings.TrimSpace(s.NextTripDate)
	if date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			return domain.TripSettings{}, domain.ValidationError{Field: "nextTripDate", Msg: "must be YYYY-MM-DD"}
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if date != "" {
		l.trip.NextTripDate = date
	}
	if dest := strings.TrimSpace(s.Destination); dest != "" {
		l.trip.Destination = dest
	}
	l.recordActivity(fmt.Sprintf("Trip settings updated - Destination: %s", l.trip.Destination))
	return l.trip, nil
}

// Pricing returns the fare table currently in effect.
func (l *Ledger) Pricing() domain.Pricing {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pricing
}

// TripSettings returns the current trip metadata.
func (l *Ledger) TripSettings() domain.TripSettings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.trip
}

// Activities returns the recent activity feed, newest first.
func (l *Ledger) Activities() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.activities...)
}

// Snapshot is a consistent copy of the ledger used by read-side
// projections and exports.
type Snapshot struct {
	Buses    []domain.Bus
	Bookings []domain.Booking
	Pricing  domain.Pricing
	Trip     domain.TripSettings
}

// Snapshot copies the full ledger state under one lock acquisition.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot{
		Buses:    append([]domain.Bus(nil), l.buses...),
		Bookings: make([]domain.Booking, 0, len(l.bookings)),
		Pricing:  l.pricing,
		Trip:     l.trip,
	}
	for _, b := range l.bookings {
		snap.Bookings = append(snap.Bookings, copyBooking(b))
	}
	return snap
}

// Load replaces the ledger state with a snapshot. Statuses are
// re-derived and the booking id counter resumes past the highest id.
func (l *Ledger) Load(snap Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buses = append([]domain.Bus(nil), snap.Buses...)
	l.bookings = nil
	l.nextID = 1
	for _, b := range snap.Bookings {
		c := copyBooking(&b)
		c.Status = domain.DeriveStatus(c.PaidAmount, c.TotalAmount)
		l.bookings = append(l.bookings, &c)
		if b.ID >= l.nextID {
			l.nextID = b.ID + 1
		}
	}
	if snap.Pricing != (domain.Pricing{}) {
		l.pricing = snap.Pricing
	}
	l.trip = snap.Trip
}

func (l *Ledger) busByID(id int64) (domain.Bus, bool) {
	for _, b := range l.buses {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Bus{}, false
}

func (l *Ledger) bookingByID(id int64) (*domain.Booking, bool) {
	for _, b := range l.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

func (l *Ledger) recordActivity(msg string) {
	l.activities = append([]string{msg}, l.activities...)
	if len(l.activities) > activityLimit {
		l.activities = l.activities[:activityLimit]
	}
}

func copyBooking(b *domain.Booking) domain.Booking {
	c := *b
	c.Members = append([]domain.Person(nil), b.Members...)
	c.Seats = append([]int(nil), b.Seats...)
	return c
}

func joinSeats(seats []int) string {
	sorted := append([]int(nil), seats...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, ", ")
}
