package model

import (
	"time"
)

const (
	TableName  = "room_cleaning_logs"
	EntityName = "cleaning_log"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldEmployeeID  = "employee_id"
	FieldStartedAt   = "started_at"
	FieldCompletedAt = "completed_at"
	FieldNotes       = "notes"
)

// CleaningLog is one housekeeping cycle of a room. It is open while
// CompletedAt is nil, and a room has at most one open log.
type CleaningLog struct {
	ID           string     `db:"id"`
	RoomID       string     `db:"room_id"`
	EmployeeID   string     `db:"employee_id"`
	StartedAt    time.Time  `db:"started_at"`
	CompletedAt  *time.Time `db:"completed_at"`
	Notes        *string    `db:"notes"`
	CreatedAt    time.Time  `db:"created_at"`
	EmployeeName *string    `db:"employee_name" table:"employees" column:"name"`
	RoomNumber   *string    `db:"room_number"   table:"rooms"     column:"number"`
}

func (CleaningLog) GetJoinQuery() string {
	return "LEFT JOIN employees ON employees.id = room_cleaning_logs.employee_id LEFT JOIN rooms ON rooms.id = room_cleaning_logs.room_id"
}

func (c CleaningLog) IsOpen() bool {
	return c.CompletedAt == nil
}
