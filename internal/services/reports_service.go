package services

import (
	"math"

	"yatra/internal/domain"
	"yatra/internal/ledger"
	"yatra/internal/utils"
)

// SnapshotSource supplies a consistent ledger snapshot for read-side
// projections.
type SnapshotSource interface {
	Snapshot() ledger.Snapshot
}

type ReportsService struct {
	Source SnapshotSource
}

type BusOccupancy struct {
	BusID         int64  `json:"busId"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Occupied      int    `json:"occupied"`
	Available     int    `json:"available"`
	OccupancyRate int    `json:"occupancyRate"`
}

type FinancialSummary struct {
	Expected    int64 `json:"expected"`
	Collected   int64 `json:"collected"`
	Outstanding int64 `json:"outstanding"`
}

type DashboardSummary struct {
	TotalParticipants int              `json:"totalParticipants"`
	TotalBookings     int              `json:"totalBookings"`
	TotalBuses        int              `json:"totalBuses"`
	TotalCapacity     int              `json:"totalCapacity"`
	AvailableSeats    int              `json:"availableSeats"`
	NextTripDate      string           `json:"nextTripDate"`
	Destination       string           `json:"destination"`
	Buses             []BusOccupancy   `json:"buses"`
	Financials        FinancialSummary `json:"financials"`
	OutstandingCount  int              `json:"outstandingCount"`
	CollectionRate    int              `json:"collectionRate"`
	FullyPaidBuses    int              `json:"fullyPaidBuses"`
}

type BusFinance struct {
	BusID         int64  `json:"busId"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	Occupied      int    `json:"occupied"`
	Available     int    `json:"available"`
	Expected      int64  `json:"expected"`
	Collected     int64  `json:"collected"`
	Outstanding   int64  `json:"outstanding"`
	OccupancyRate int    `json:"occupancyRate"`
}

// DashboardSummary recomputes every dashboard figure from the current
// ledger state. Nothing here is cached.
func (s ReportsService) DashboardSummary() DashboardSummary {
	snap := s.Source.Snapshot()

	out := DashboardSummary{
		TotalBookings: len(snap.Bookings),
		TotalBuses:    len(snap.Buses),
		NextTripDate:  utils.FormatTripDate(snap.Trip.NextTripDate),
		Destination:   snap.Trip.Destination,
		Buses:         make([]BusOccupancy, 0, len(snap.Buses)),
	}

	occupied := map[int64]int{}
	for _, b := range snap.Bookings {
		out.TotalParticipants += len(b.Members)
		occupied[b.BusID] += len(b.Seats)
		out.Financials.Expected += b.TotalAmount
		out.Financials.Collected += b.PaidAmount
		if b.Status != domain.StatusPaid {
			out.OutstandingCount++
		}
	}
	out.Financials.Outstanding = out.Financials.Expected - out.Financials.Collected

	totalOccupied := 0
	for _, bus := range snap.Buses {
		occ := occupied[bus.ID]
		totalOccupied += occ
		out.TotalCapacity += bus.Capacity
		out.Buses = append(out.Buses, BusOccupancy{
			BusID:         bus.ID,
			Name:          bus.Name,
			Capacity:      bus.Capacity,
			Occupied:      occ,
			Available:     bus.Capacity - occ,
			OccupancyRate: ratePercent(occ, bus.Capacity),
		})
	}
	out.AvailableSeats = out.TotalCapacity - totalOccupied
	out.CollectionRate = collectionRate(snap.Bookings)
	out.FullyPaidBuses = fullyPaidBusCount(snap)
	return out
}

// PerBusFinancials derives expected/collected/outstanding and the
// occupancy rate for every bus.
func (s ReportsService) PerBusFinancials() []BusFinance {
	snap := s.Source.Snapshot()

	out := make([]BusFinance, 0, len(snap.Buses))
	for _, bus := range snap.Buses {
		row := BusFinance{BusID: bus.ID, Name: bus.Name, Capacity: bus.Capacity}
		for _, b := range snap.Bookings {
			if b.BusID != bus.ID {
				continue
			}
			row.Occupied += len(b.Seats)
			row.Expected += b.TotalAmount
			row.Collected += b.PaidAmount
		}
		row.Available = bus.Capacity - row.Occupied
		row.Outstanding = row.Expected - row.Collected
		row.OccupancyRate = ratePercent(row.Occupied, bus.Capacity)
		out = append(out, row)
	}
	return out
}

// CollectionRate is the rounded percentage of fully paid bookings,
// zero when there are none.
func (s ReportsService) CollectionRate() int {
	return collectionRate(s.Source.Snapshot().Bookings)
}

// FullyPaidBusCount counts buses where at least one booking exists and
// every booking is paid.
func (s ReportsService) FullyPaidBusCount() int {
	return fullyPaidBusCount(s.Source.Snapshot())
}

func collectionRate(bookings []domain.Booking) int {
	if len(bookings) == 0 {
		return 0
	}
	paid := 0
	for _, b := range bookings {
		if b.Status == domain.StatusPaid {
			paid++
		}
	}
	return ratePercent(paid, len(bookings))
}

func fullyPaidBusCount(snap ledger.Snapshot) int {
	count := 0
	for _, bus := range snap.Buses {
		any, allPaid := false, true
		for _, b := range snap.Bookings {
			if b.BusID != bus.ID {
				continue
			}
			any = true
			if b.Status != domain.StatusPaid {
				allPaid = false
				break
			}
		}
		if any && allPaid {
			count++
		}
	}
	return count
}

func ratePercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
