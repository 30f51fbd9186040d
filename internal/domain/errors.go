package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	ID       int64
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// SeatConflictError reports an explicitly requested seat that is out of
// range or already claimed on the bus.
type SeatConflictError struct {
	BusID int64
	Seat  int
	Msg   string
}

func (e SeatConflictError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("seat %d: %s", e.Seat, e.Msg)
	}
	return fmt.Sprintf("seat %d is already booked", e.Seat)
}

// InsufficientCapacityError reports an auto-assignment that could not
// collect enough free seats.
type InsufficientCapacityError struct {
	BusID     int64
	Requested int
	Available int
}

func (e InsufficientCapacityError) Error() string {
	return fmt.Sprintf("bus %d has %d free seats, %d requested", e.BusID, e.Available, e.Requested)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsSeatConflict(err error) bool {
	var target SeatConflictError
	return errors.As(err, &target)
}

func IsInsufficientCapacity(err error) bool {
	var target InsufficientCapacityError
	return errors.As(err, &target)
}
