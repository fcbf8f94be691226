package dto

import (
	"hotel/internal/domains/cleaning/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type StartCleaningRequest struct {
	RoomID     string `json:"roomId"     validate:"required,uuid"`
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
}

func (s *StartCleaningRequest) ToModel(now time.Time) model.CleaningLog {
	return model.CleaningLog{
		ID:         uuid.NewString(),
		RoomID:     s.RoomID,
		EmployeeID: s.EmployeeID,
		StartedAt:  now,
		CreatedAt:  now,
	}
}

type CompleteCleaningRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}

type CleaningLogResponse struct {
	ID           string  `json:"id"`
	RoomID       string  `json:"roomId"`
	RoomNumber   string  `json:"roomNumber,omitempty"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	StartedAt    string  `json:"startedAt"`
	CompletedAt  *string `json:"completedAt"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

func (r *CleaningLogResponse) FromModel(m model.CleaningLog) {
	r.ID = m.ID
	r.RoomID = m.RoomID
	r.EmployeeID = m.EmployeeID
	r.StartedAt = timezone.Format(m.StartedAt, constant.DateFormat)
	r.Notes = m.Notes
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)

	if m.CompletedAt != nil {
		completed := timezone.Format(*m.CompletedAt, constant.DateFormat)
		r.CompletedAt = &completed
	}

	if m.EmployeeName != nil {
		r.EmployeeName = *m.EmployeeName
	}

	if m.RoomNumber != nil {
		r.RoomNumber = *m.RoomNumber
	}
}

type GetCleaningLogsResponse struct {
	Logs      []CleaningLogResponse `json:"logs"`
	TotalPage int                   `json:"totalPage"`
	TotalData int                   `json:"totalData"`
}

func (r *GetCleaningLogsResponse) FromModels(models []model.CleaningLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]CleaningLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
