package services

import (
	"strconv"
	"strings"
)

// ExportService renders the CSV reports the trip manager downloads.
// Fields are comma-joined without quoting, matching the report format
// the dashboard has always produced.
type ExportService struct {
	Source SnapshotSource
}

// ParticipantCSV emits one row per trip member with their seat and the
// booking's payment figures.
func (s ExportService) ParticipantCSV() string {
	snap := s.Source.Snapshot()

	busNames := map[int64]string{}
	for _, bus := range snap.Buses {
		busNames[bus.ID] = bus.Name
	}

	lines := []string{"Name,Phone,Bus,Seat,Payment Status,Amount Paid,Outstanding"}
	for _, b := range snap.Bookings {
		busName := busNames[b.BusID]
		if busName == "" {
			busName = "N/A"
		}
		for i, m := range b.Members {
			seat := ""
			if i < len(b.Seats) {
				seat = strconv.Itoa(b.Seats[i])
			}
			lines = append(lines, strings.Join([]string{
				m.Name,
				m.Phone,
				busName,
				seat,
				string(b.Status),
				strconv.FormatInt(b.PaidAmount, 10),
				strconv.FormatInt(b.Outstanding(), 10),
			}, ","))
		}
	}
	return strings.Join(lines, "\n")
}

// BusCSV emits one row per bus with occupancy and financial totals.
func (s ExportService) BusCSV() string {
	rows := ReportsService{Source: s.Source}.PerBusFinancials()

	lines := []string{"Bus Name,Capacity,Occupied,Available,Total Expected,Total Collected,Outstanding,Occupancy Rate"}
	for _, r := range rows {
		lines = append(lines, strings.Join([]string{
			r.Name,
			strconv.Itoa(r.Capacity),
			strconv.Itoa(r.Occupied),
			strconv.Itoa(r.Available),
			strconv.FormatInt(r.Expected, 10),
			strconv.FormatInt(r.Collected, 10),
			strconv.FormatInt(r.Outstanding, 10),
			strconv.Itoa(r.OccupancyRate) + "%",
		}, ","))
	}
	return strings.Join(lines, "\n")
}
