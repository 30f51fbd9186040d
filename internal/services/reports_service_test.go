package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"yatra/internal/domain"
	"yatra/internal/ledger"
)

func seededLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	require.NoError(t, l.UpdatePricing(domain.Pricing{AdultFare: 2500, ChildFare: 1500, SeniorFare: 2000}))

	_, err := l.AddBus("Bus 1", 56)
	require.NoError(t, err)
	_, err = l.AddBus("Bus 2", 40)
	require.NoError(t, err)

	_, err = l.CreateBooking(ledger.CreateBookingParams{
		Label: "Kumar Family",
		Members: []domain.Person{
			{Name: "Ram Kumar", Age: 45, Phone: "9876543210"},
			{Name: "Lata Kumar", Age: 10, Phone: ""},
		},
		BusID:      1,
		PaidAmount: 4000,
	})
	require.NoError(t, err)

	_, err = l.CreateBooking(ledger.CreateBookingParams{
		Label:      "Mohan Singh",
		Members:    []domain.Person{{Name: "Mohan Singh", Age: 62, Phone: "9876543212"}},
		BusID:      2,
		PaidAmount: 1000,
	})
	require.NoError(t, err)

	_, err = l.UpdateTripSettings(domain.TripSettings{NextTripDate: "2025-08-15", Destination: "Vaishno Devi"})
	require.NoError(t, err)
	return l
}

func TestDashboardSummary(t *testing.T) {
	l := seededLedger(t)
	svc := ReportsService{Source: l}

	got := svc.DashboardSummary()
	want := DashboardSummary{
		TotalParticipants: 3,
		TotalBookings:     2,
		TotalBuses:        2,
		TotalCapacity:     96,
		AvailableSeats:    93,
		NextTripDate:      "Aug 15, 2025",
		Destination:       "Vaishno Devi",
		Buses: []BusOccupancy{
			{BusID: 1, Name: "Bus 1", Capacity: 56, Occupied: 2, Available: 54, OccupancyRate: 4},
			{BusID: 2, Name: "Bus 2", Capacity: 40, Occupied: 1, Available: 39, OccupancyRate: 3},
		},
		Financials: FinancialSummary{
			Expected:    6000, // 2500+1500 on bus 1, 2000 on bus 2
			Collected:   5000,
			Outstanding: 1000,
		},
		OutstandingCount: 1,
		CollectionRate:   50,
		FullyPaidBuses:   1,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DashboardSummary mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardSummaryIdempotent(t *testing.T) {
	l := seededLedger(t)
	svc := ReportsService{Source: l}

	first := svc.DashboardSummary()
	second := svc.DashboardSummary()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("back-to-back summaries differ:\n%s", diff)
	}
}

func TestPerBusFinancials(t *testing.T) {
	l := seededLedger(t)
	svc := ReportsService{Source: l}

	got := svc.PerBusFinancials()
	want := []BusFinance{
		{BusID: 1, Name: "Bus 1", Capacity: 56, Occupied: 2, Available: 54, Expected: 4000, Collected: 4000, Outstanding: 0, OccupancyRate: 4},
		{BusID: 2, Name: "Bus 2", Capacity: 40, Occupied: 1, Available: 39, Expected: 2000, Collected: 1000, Outstanding: 1000, OccupancyRate: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PerBusFinancials mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionRateEmptyLedger(t *testing.T) {
	svc := ReportsService{Source: ledger.New()}
	require.Equal(t, 0, svc.CollectionRate())
	require.Equal(t, 0, svc.FullyPaidBusCount())

	sum := svc.DashboardSummary()
	require.Equal(t, 0, sum.TotalParticipants)
	require.Equal(t, 0, sum.AvailableSeats)
}

func TestFullyPaidBusCountRequiresBookings(t *testing.T) {
	l := ledger.New()
	_, err := l.AddBus("Empty Bus", 56)
	require.NoError(t, err)

	svc := ReportsService{Source: l}
	require.Equal(t, 0, svc.FullyPaidBusCount(), "an empty bus is not fully paid")

	_, err = l.CreateBooking(ledger.CreateBookingParams{
		Label:      "Solo",
		Members:    []domain.Person{{Name: "Solo", Age: 30}},
		BusID:      1,
		PaidAmount: 2500,
	})
	require.NoError(t, err)
	require.Equal(t, 1, svc.FullyPaidBusCount())
}
