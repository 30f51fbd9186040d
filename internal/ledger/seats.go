package ledger

import (
	"yatra/internal/domain"
)

// seatFree reports whether no booking on the bus claims the seat.
// Callers hold the ledger mutex.
func (l *Ledger) seatFree(busID int64, seat int) bool {
	for _, b := range l.bookings {
		if b.BusID != busID {
			continue
		}
		for _, s := range b.Seats {
			if s == seat {
				return false
			}
		}
	}
	return true
}

// nextAvailableSeats scans seats 1..capacity in increasing order and
// collects the first count free ones.
func (l *Ledger) nextAvailableSeats(bus domain.Bus, count int) ([]int, error) {
	seats := make([]int, 0, count)
	for seat := 1; seat <= bus.Capacity && len(seats) < count; seat++ {
		if l.seatFree(bus.ID, seat) {
			seats = append(seats, seat)
		}
	}
	if len(seats) < count {
		// the scan ran the whole bus, so seats holds every free seat
		return nil, domain.InsufficientCapacityError{
			BusID:     bus.ID,
			Requested: count,
			Available: len(seats),
		}
	}
	return seats, nil
}

// assignSeats validates an explicit seat request or falls back to
// auto-assignment when none was given.
func (l *Ledger) assignSeats(bus domain.Bus, requested []int, memberCount int) ([]int, error) {
	if len(requested) == 0 {
		return l.nextAvailableSeats(bus, memberCount)
	}
	if len(requested) != memberCount {
		return nil, domain.ValidationError{
			Field: "seats",
			Msg:   "seat count must match member count",
		}
	}
	seen := make(map[int]bool, len(requested))
	for _, seat := range requested {
		if seat < 1 || seat > bus.Capacity {
			return nil, domain.SeatConflictError{BusID: bus.ID, Seat: seat, Msg: "out of range"}
		}
		if seen[seat] {
			return nil, domain.SeatConflictError{BusID: bus.ID, Seat: seat, Msg: "requested twice"}
		}
		seen[seat] = true
		if !l.seatFree(bus.ID, seat) {
			return nil, domain.SeatConflictError{BusID: bus.ID, Seat: seat}
		}
	}
	return requested, nil
}

// IsSeatFree reports whether a seat is unclaimed on the bus. Unknown
// buses read as free; use GetBus to distinguish.
func (l *Ledger) IsSeatFree(busID int64, seat int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seatFree(busID, seat)
}

// occupiedCount counts claimed seats on a bus. Callers hold the mutex.
func (l *Ledger) occupiedCount(busID int64) int {
	n := 0
	for _, b := range l.bookings {
		if b.BusID == busID {
			n += len(b.Seats)
		}
	}
	return n
}
