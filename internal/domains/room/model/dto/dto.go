package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number      string          `json:"number"      validate:"required,max=10"`
	Type        model.Type      `json:"type"        validate:"required,enum"`
	Status      model.Status    `json:"status"      validate:"omitempty,enum"`
	Price       decimal.Decimal `json:"price"       validate:"gte=0"`
	Capacity    int             `json:"capacity"    validate:"required,min=1"`
	Amenities   []string        `json:"amenities"   validate:"omitempty,dive,required"`
	Consumables []string        `json:"consumables" validate:"omitempty,dive,uuid"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		Number:      c.Number,
		Type:        c.Type,
		Status:      status,
		Price:       c.Price,
		Capacity:    c.Capacity,
		Amenities:   pq.StringArray(nonNil(c.Amenities)),
		Consumables: pq.StringArray(nonNil(c.Consumables)),
		Description: c.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

// UpdateRoomRequest is a partial update; nil fields are left untouched.
type UpdateRoomRequest struct {
	Number      *string          `db:"number"      json:"number"      validate:"omitempty,max=10"`
	Type        *model.Type      `db:"type"        json:"type"        validate:"omitempty,enum"`
	Status      *model.Status    `db:"status"      json:"status"      validate:"omitempty,enum"`
	Price       *decimal.Decimal `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Capacity    *int             `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Amenities   *pq.StringArray  `db:"amenities"   json:"amenities"`
	Consumables *pq.StringArray  `db:"consumables" json:"consumables" validate:"omitempty,dive,uuid"`
	Description *string          `db:"description" json:"description" validate:"omitempty,max=500"`
}

func (u UpdateRoomRequest) IsEmpty() bool {
	return u == UpdateRoomRequest{}
}

type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,enum"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile multipart.File        `validate:"-"`
}

type RoomResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Type        model.Type      `json:"type"`
	Status      model.Status    `json:"status"`
	Price       decimal.Decimal `json:"price"`
	Capacity    int             `json:"capacity"`
	Amenities   []string        `json:"amenities"`
	Consumables []string        `json:"consumables"`
	Description *string         `json:"description,omitempty"`
	Image       *string         `json:"image,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Number = m.Number
	r.Type = m.Type
	r.Status = m.Status
	r.Price = m.Price
	r.Capacity = m.Capacity
	r.Amenities = nonNil(m.Amenities)
	r.Consumables = nonNil(m.Consumables)
	r.Description = m.Description
	r.Image = m.Image
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, m := range models {
		r.Rooms[i].FromModel(m)
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
