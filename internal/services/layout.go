package services

// SeatRow is one physical row of the bus: two seats left of the aisle,
// three right, except the back bench which has no aisle.
type SeatRow struct {
	Left  []int `json:"left"`
	Right []int `json:"right,omitempty"`
}

// SeatRows lays seat numbers out row-major the way the bus is built:
// rows of 5 (2+3) and a trailing bench of up to 6. A 56-seat bus gets
// ten rows plus the bench; other capacities reuse the same template.
func SeatRows(capacity int) []SeatRow {
	var rows []SeatRow
	seat := 1
	for capacity-seat+1 > 6 {
		row := SeatRow{
			Left:  []int{seat, seat + 1},
			Right: []int{seat + 2, seat + 3, seat + 4},
		}
		rows = append(rows, row)
		seat += 5
	}
	if seat <= capacity {
		bench := SeatRow{}
		for ; seat <= capacity; seat++ {
			bench.Left = append(bench.Left, seat)
		}
		rows = append(rows, bench)
	}
	return rows
}
