package ledger

import (
	"errors"
	"testing"

	"yatra/internal/domain"
)

func TestNextAvailableSeatsSkipsClaimed(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.CreateBooking(CreateBookingParams{
		Label:   "Blocker",
		Members: []domain.Person{{Name: "B1", Age: 30}, {Name: "B2", Age: 30}},
		BusID:   1,
		Seats:   []int{1, 3},
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	b, err := l.CreateBooking(CreateBookingParams{
		Label:   "Filler",
		Members: []domain.Person{{Name: "F1", Age: 30}, {Name: "F2", Age: 30}, {Name: "F3", Age: 30}},
		BusID:   1,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	want := []int{2, 4, 5}
	for i, s := range b.Seats {
		if s != want[i] {
			t.Fatalf("seats = %v, want %v", b.Seats, want)
		}
	}
}

func TestInsufficientCapacity(t *testing.T) {
	l := newTestLedger(t)

	members := make([]domain.Person, 60)
	for i := range members {
		members[i] = domain.Person{Name: "P", Age: 30}
	}
	_, err := l.CreateBooking(CreateBookingParams{Label: "Horde", Members: members, BusID: 1})
	if !domain.IsInsufficientCapacity(err) {
		t.Fatalf("got %v, want insufficient capacity", err)
	}

	var ice domain.InsufficientCapacityError
	if !errors.As(err, &ice) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if ice.Requested != 60 || ice.Available != 56 {
		t.Errorf("requested/available = %d/%d, want 60/56", ice.Requested, ice.Available)
	}
	if n := len(l.ListBookings(1)); n != 0 {
		t.Errorf("failed auto-assign mutated the ledger")
	}
}

func TestAssignSeatsOutOfRange(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.CreateBooking(CreateBookingParams{
		Label:   "Edge",
		Members: []domain.Person{{Name: "E", Age: 30}},
		BusID:   1,
		Seats:   []int{57},
	})
	if !domain.IsSeatConflict(err) {
		t.Fatalf("seat 57 on a 56-seat bus: got %v", err)
	}

	_, err = l.CreateBooking(CreateBookingParams{
		Label:   "Edge",
		Members: []domain.Person{{Name: "E", Age: 30}},
		BusID:   1,
		Seats:   []int{0},
	})
	if !domain.IsSeatConflict(err) {
		t.Fatalf("seat 0: got %v", err)
	}
}

func TestAssignSeatsCountMismatch(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.CreateBooking(CreateBookingParams{
		Label:   "Mismatch",
		Members: []domain.Person{{Name: "A", Age: 30}, {Name: "B", Age: 30}},
		BusID:   1,
		Seats:   []int{4},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestAssignSeatsDuplicateRequest(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.CreateBooking(CreateBookingParams{
		Label:   "Dupes",
		Members: []domain.Person{{Name: "A", Age: 30}, {Name: "B", Age: 30}},
		BusID:   1,
		Seats:   []int{9, 9},
	})
	if !domain.IsSeatConflict(err) {
		t.Fatalf("got %v, want seat conflict", err)
	}
}

func TestSeatConflictNamesOffendingSeat(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.CreateBooking(CreateBookingParams{
		Label:   "Holder",
		Members: []domain.Person{{Name: "H", Age: 30}},
		BusID:   1,
		Seats:   []int{22},
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	_, err := l.CreateBooking(CreateBookingParams{
		Label:   "Claimer",
		Members: []domain.Person{{Name: "C", Age: 30}},
		BusID:   1,
		Seats:   []int{22},
	})
	var sce domain.SeatConflictError
	if !errors.As(err, &sce) {
		t.Fatalf("got %v, want SeatConflictError", err)
	}
	if sce.Seat != 22 {
		t.Errorf("conflicting seat = %d, want 22", sce.Seat)
	}
}

func TestIsSeatFree(t *testing.T) {
	l := newTestLedger(t)
	if !l.IsSeatFree(1, 1) {
		t.Fatalf("fresh bus should have seat 1 free")
	}
	if _, err := l.CreateBooking(CreateBookingParams{
		Label:   "X",
		Members: []domain.Person{{Name: "X", Age: 30}},
		BusID:   1,
		Seats:   []int{1},
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if l.IsSeatFree(1, 1) {
		t.Errorf("seat 1 should be claimed")
	}
	if !l.IsSeatFree(1, 2) {
		t.Errorf("seat 2 should be free")
	}
}
