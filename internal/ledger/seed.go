package ledger

import "yatra/internal/domain"

// DemoSnapshot returns the fixture the trip manager ships with: three
// 56-seat buses and a handful of registered pilgrims.
func DemoSnapshot() Snapshot {
	return Snapshot{
		Buses: []domain.Bus{
			{ID: 1, Name: "Bus 1", Capacity: 56},
			{ID: 2, Name: "Bus 2", Capacity: 56},
			{ID: 3, Name: "Bus 3", Capacity: 56},
		},
		Bookings: []domain.Booking{
			{
				ID:    1,
				Label: "Ram Kumar",
				Members: []domain.Person{
					{Name: "Ram Kumar", Age: 45, Phone: "9876543210"},
				},
				BusID:        1,
				Seats:        []int{15},
				TotalAmount:  2500,
				PaidAmount:   2500,
				RegisteredAt: "2025-07-15",
			},
			{
				ID:    2,
				Label: "Sita Devi",
				Members: []domain.Person{
					{Name: "Sita Devi", Age: 38, Phone: "9876543211"},
				},
				BusID:        1,
				Seats:        []int{16},
				TotalAmount:  2500,
				PaidAmount:   0,
				RegisteredAt: "2025-07-16",
			},
			{
				ID:    3,
				Label: "Mohan Singh",
				Members: []domain.Person{
					{Name: "Mohan Singh", Age: 62, Phone: "9876543212"},
				},
				BusID:        2,
				Seats:        []int{8},
				TotalAmount:  2500,
				PaidAmount:   2500,
				RegisteredAt: "2025-07-17",
			},
		},
		Pricing: domain.DefaultPricing(),
		Trip: domain.TripSettings{
			NextTripDate: "2025-08-15",
			Destination:  "Vaishno Devi",
		},
	}
}
