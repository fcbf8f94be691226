package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string     `json:"email"    validate:"required,email,max=255"`
	Password string     `json:"password" validate:"required,min=6"`
	Name     string     `json:"name"     validate:"required,max=255"`
	Role     model.Role `json:"role"     validate:"omitempty,enum"`
}

func (r *CreateUserRequest) ToModel(actor, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = model.RoleColaborador
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Name:     r.Name,
		Role:     role,
		Active:   true,
		Metadata: gModel.NewMetadata(timezone.Now(), actor),
	}
}

type UpdateUserRequest struct {
	Name   *string     `db:"name"   json:"name"   validate:"omitempty,max=255"`
	Role   *model.Role `db:"role"   json:"role"   validate:"omitempty,enum"`
	Active *bool       `db:"active" json:"active"`
}

func (u UpdateUserRequest) IsEmpty() bool {
	return u == UpdateUserRequest{}
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      model.Role `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *string    `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Email = m.Email
	r.Name = m.Name
	r.Role = m.Role
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
