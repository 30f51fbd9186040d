package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParticipantCSV(t *testing.T) {
	l := seededLedger(t)
	svc := ExportService{Source: l}

	lines := strings.Split(svc.ParticipantCSV(), "\n")
	require.Equal(t, "Name,Phone,Bus,Seat,Payment Status,Amount Paid,Outstanding", lines[0])
	require.Len(t, lines, 4, "header plus one row per member")

	require.Equal(t, "Ram Kumar,9876543210,Bus 1,1,Paid,4000,0", lines[1])
	require.Equal(t, "Lata Kumar,,Bus 1,2,Paid,4000,0", lines[2])
	require.Equal(t, "Mohan Singh,9876543212,Bus 2,1,Partial,1000,1000", lines[3])
}

func TestBusCSV(t *testing.T) {
	l := seededLedger(t)
	svc := ExportService{Source: l}

	lines := strings.Split(svc.BusCSV(), "\n")
	require.Equal(t, "Bus Name,Capacity,Occupied,Available,Total Expected,Total Collected,Outstanding,Occupancy Rate", lines[0])
	require.Len(t, lines, 3)

	require.Equal(t, "Bus 1,56,2,54,4000,4000,0,4%", lines[1])
	require.Equal(t, "Bus 2,40,1,39,2000,1000,1000,3%", lines[2])
}
