package employee

import (
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee handles the creation of a new employee.
// @Summary Create a new employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	employee, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, employee)
}

// GetEmployees retrieves all employees.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (active, inactive, on-leave)"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	status := model.Status(r.URL.Query().Get(model.FieldStatus))
	if err := validator.ValidateVar(status, "omitempty,enum"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldStatus, string(status))

	employees, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "employee"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an employee by its ID.
// @Summary Update an employee by ID
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "employee"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// DeleteEmployee deletes an employee by its ID.
// @Summary Delete an employee by ID
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "employee"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
