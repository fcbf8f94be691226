package model

import (
	"fmt"
	roomModel "hotel/internal/domains/room/model"
	"slices"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// transitions lists, for each status, the statuses it may move to. Terminal
// statuses have no entry.
var transitions = map[Status][]Status{
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {StatusCompleted},
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", value)
	}

	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// RoomStatusAfter returns the status the booked room takes when a booking
// moves from -> to. The second value is false when the room is left as is,
// which is the case for cancelling a booking that never checked in.
func RoomStatusAfter(from, to Status) (roomModel.Status, bool) {
	switch to {
	case StatusCheckedIn:
		return roomModel.StatusOccupied, true
	case StatusCheckedOut, StatusCompleted:
		return roomModel.StatusCleaning, true
	case StatusCancelled:
		if from == StatusCheckedIn {
			return roomModel.StatusAvailable, true
		}
	}

	return "", false
}
