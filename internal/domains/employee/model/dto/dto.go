package dto

import (
	"hotel/internal/domains/employee/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string           `json:"name"        validate:"required,max=255"`
	Email       string           `json:"email"       validate:"required,email,max=255"`
	Phone       *string          `json:"phone"       validate:"omitempty,max=20"`
	Document    string           `json:"document"    validate:"required,max=50"`
	Nationality *string          `json:"nationality" validate:"omitempty,max=100"`
	Address     *string          `json:"address"     validate:"omitempty,max=500"`
	Position    string           `json:"position"    validate:"required,max=100"`
	Department  *string          `json:"department"  validate:"omitempty,max=100"`
	Salary      *decimal.Decimal `json:"salary"      validate:"omitempty,gte=0"`
	HireDate    string           `json:"hireDate"    validate:"required,datetime=2006-01-02"`
	Status      model.Status     `json:"status"      validate:"omitempty,enum"`
}

// ToModel expects a request that already passed validation, so HireDate
// parses.
func (c *CreateEmployeeRequest) ToModel(user string) model.Employee {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	hireDate, _ := time.Parse(constant.DateOnlyFormat, c.HireDate)

	employee := model.Employee{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Document:    c.Document,
		Nationality: c.Nationality,
		Address:     c.Address,
		Position:    c.Position,
		Department:  c.Department,
		HireDate:    hireDate,
		Status:      status,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}

	if c.Salary != nil {
		employee.Salary = decimal.NewNullDecimal(*c.Salary)
	}

	return employee
}

type UpdateEmployeeRequest struct {
	Name        *string          `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Email       *string          `db:"email"       json:"email"       validate:"omitempty,email,max=255"`
	Phone       *string          `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Document    *string          `db:"document"    json:"document"    validate:"omitempty,max=50"`
	Nationality *string          `db:"nationality" json:"nationality" validate:"omitempty,max=100"`
	Address     *string          `db:"address"     json:"address"     validate:"omitempty,max=500"`
	Position    *string          `db:"position"    json:"position"    validate:"omitempty,max=100"`
	Department  *string          `db:"department"  json:"department"  validate:"omitempty,max=100"`
	Salary      *decimal.Decimal `db:"salary"      json:"salary"      validate:"omitempty,gte=0"`
	HireDate    *string          `db:"hire_date"   json:"hireDate"    validate:"omitempty,datetime=2006-01-02"`
	Status      *model.Status    `db:"status"      json:"status"      validate:"omitempty,enum"`
}

func (u UpdateEmployeeRequest) IsEmpty() bool {
	return u == UpdateEmployeeRequest{}
}

type EmployeeResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       *string          `json:"phone,omitempty"`
	Document    string           `json:"document"`
	Nationality *string          `json:"nationality,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Position    string           `json:"position"`
	Department  *string          `json:"department,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	HireDate    string           `json:"hireDate"`
	Status      model.Status     `json:"status"`
	gDto.Metadata
}

func (e *EmployeeResponse) FromModel(m model.Employee) {
	e.ID = m.ID
	e.Name = m.Name
	e.Email = m.Email
	e.Phone = m.Phone
	e.Document = m.Document
	e.Nationality = m.Nationality
	e.Address = m.Address
	e.Position = m.Position
	e.Department = m.Department
	e.HireDate = m.HireDate.Format(constant.DateOnlyFormat)
	e.Status = m.Status
	e.Metadata.FromModel(m.Metadata)

	if m.Salary.Valid {
		salary := m.Salary.Decimal
		e.Salary = &salary
	}
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"totalPage"`
	TotalData int                `json:"totalData"`
}

func (e *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	e.TotalData = totalData
	e.TotalPage = shared.CalculateTotalPage(totalData, limit)

	e.Employees = make([]EmployeeResponse, len(models))
	for i, m := range models {
		e.Employees[i].FromModel(m)
	}
}
