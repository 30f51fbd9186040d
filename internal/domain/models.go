package domain

// PaymentStatus is the fixed payment state of a booking. It is always
// derived from the paid/total amounts, never stored independently.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Paid"
	StatusPartial PaymentStatus = "Partial"
	StatusPending PaymentStatus = "Pending"
)

// DeriveStatus computes the payment state from amounts.
func DeriveStatus(paid, total int64) PaymentStatus {
	switch {
	case paid >= total:
		return StatusPaid
	case paid == 0:
		return StatusPending
	default:
		return StatusPartial
	}
}

// NormalizeStatus maps free-form status strings ("paid", "PENDING", ...)
// onto the enum. Unknown values fall back to Pending.
func NormalizeStatus(s string) PaymentStatus {
	switch PaymentStatus(s) {
	case StatusPaid, StatusPartial, StatusPending:
		return PaymentStatus(s)
	}
	switch s {
	case "paid", "PAID":
		return StatusPaid
	case "partial", "PARTIAL":
		return StatusPartial
	default:
		return StatusPending
	}
}

// Bus is a vehicle in the fleet. Capacity is fixed at creation and
// occupancy is always recomputed from bookings, never stored.
type Bus struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Person is a member of a booking. It has no identity of its own.
type Person struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Phone string `json:"phone"`
}

// Booking reserves one seat per member on a single bus. An individual
// participant is a booking with one member.
type Booking struct {
	ID           int64         `json:"id"`
	Label        string        `json:"label"`
	Members      []Person      `json:"members"`
	BusID        int64         `json:"busId"`
	Seats        []int         `json:"seats"`
	TotalAmount  int64         `json:"totalAmount"`
	PaidAmount   int64         `json:"paidAmount"`
	Status       PaymentStatus `json:"paymentStatus"`
	RegisteredAt string        `json:"registrationDate"`
}

// Outstanding is the unpaid remainder, floored at zero for overpayments.
func (b Booking) Outstanding() int64 {
	if b.PaidAmount >= b.TotalAmount {
		return 0
	}
	return b.TotalAmount - b.PaidAmount
}

// TripSettings holds the externally supplied trip metadata shown on the
// dashboard. The ledger only passes it through.
type TripSettings struct {
	NextTripDate string `json:"nextTripDate"`
	Destination  string `json:"destination"`
}
