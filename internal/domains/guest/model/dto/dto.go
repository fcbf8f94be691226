package dto

import (
	"hotel/internal/domains/guest/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Email       string  `json:"email"       validate:"required,email,max=255"`
	Phone       string  `json:"phone"       validate:"required,max=20"`
	Document    string  `json:"document"    validate:"required,max=50"`
	Nationality string  `json:"nationality" validate:"required,max=100"`
	Address     *string `json:"address"     validate:"omitempty,max=500"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Document:    c.Document,
		Nationality: c.Nationality,
		Address:     c.Address,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateGuestRequest struct {
	Name        *string `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Email       *string `db:"email"       json:"email"       validate:"omitempty,email,max=255"`
	Phone       *string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Document    *string `db:"document"    json:"document"    validate:"omitempty,max=50"`
	Nationality *string `db:"nationality" json:"nationality" validate:"omitempty,max=100"`
	Address     *string `db:"address"     json:"address"     validate:"omitempty,max=500"`
}

func (u UpdateGuestRequest) IsEmpty() bool {
	return u == UpdateGuestRequest{}
}

type GuestResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Document    string  `json:"document"`
	Nationality string  `json:"nationality"`
	Address     *string `json:"address,omitempty"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(m model.Guest) {
	g.ID = m.ID
	g.Name = m.Name
	g.Email = m.Email
	g.Phone = m.Phone
	g.Document = m.Document
	g.Nationality = m.Nationality
	g.Address = m.Address
	g.Metadata.FromModel(m.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"totalPage"`
	TotalData int             `json:"totalData"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, m := range models {
		g.Guests[i].FromModel(m)
	}
}
