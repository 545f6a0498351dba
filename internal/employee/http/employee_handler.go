// Package http provides HTTP handlers for employee management operations.
package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/export"
	"github.com/allisson/employees/internal/employee/http/dto"
	"github.com/allisson/employees/internal/employee/usecase"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/httputil"
	"github.com/allisson/employees/internal/query"
)

// requestActor is recorded as createdBy/updatedBy for changes made through the API.
const requestActor = "api"

// reservedParams are list query parameters that are not search criteria.
var reservedParams = map[string]struct{}{
	"page":   {},
	"size":   {},
	"sort":   {},
	"format": {},
}

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	useCase         usecase.UseCase
	exporter        *export.Exporter
	defaultPageSize int
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler. defaultPageSize applies when a
// request omits the page size.
func NewEmployeeHandler(
	useCase usecase.UseCase,
	exporter *export.Exporter,
	defaultPageSize int,
	logger *slog.Logger,
) *EmployeeHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = query.DefaultPageSize
	}
	return &EmployeeHandler{
		useCase:         useCase,
		exporter:        exporter,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// RegisterRoutes mounts the employee routes on r.
func (h *EmployeeHandler) RegisterRoutes(r gin.IRouter) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.ListHandler)
		employees.POST("/search", h.SearchHandler)
		employees.GET("/export", h.ExportHandler)
		employees.POST("", h.CreateHandler)
		employees.GET("/:id", h.GetHandler)
		employees.PATCH("/:id", h.UpdateHandler)
		employees.DELETE("/:id", h.DeleteHandler)
	}
}

// ListHandler lists employees.
// GET /v1/employees?page=0&size=20&sort=fullName,desc&designation=eng
// Every query parameter other than page, size and sort is a search criterion.
// Returns 200 OK with a page of employees.
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
	q, err := h.parseListQuery(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	page, err := h.useCase.ListEmployees(c.Request.Context(), q)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPageToListResponse(page))
}

// SearchHandler queries employees with a JSON body.
// POST /v1/employees/search
// Returns 200 OK with a page of employees.
func (h *EmployeeHandler) SearchHandler(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	q, err := req.ToQuery(h.defaultPageSize)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	page, err := h.useCase.ListEmployees(c.Request.Context(), q)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPageToListResponse(page))
}

// ExportHandler downloads every employee matched by the list parameters.
// GET /v1/employees/export?format=csv|pdf
// Returns 200 OK with the file as an attachment.
func (h *EmployeeHandler) ExportHandler(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatCSV)))
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.NewValidationFailure(
			apperrors.NewErrorDetail("format", "format must be csv or pdf", "ERR_INVALID_FORMAT"),
		).WithCause(err), h.logger)
		return
	}

	q, err := h.parseListQuery(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var buf bytes.Buffer
	if _, err := h.exporter.Export(c.Request.Context(), &buf, format, q); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="employees.`+string(format)+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// GetHandler retrieves an employee by ID.
// GET /v1/employees/:id
// Returns 200 OK with the employee.
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	employee, err := h.useCase.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// CreateHandler creates a new employee.
// POST /v1/employees
// Returns 201 Created with the stored employee.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input, err := req.ToInput(requestActor)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	employee, err := h.useCase.CreateEmployee(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEmployeeToResponse(employee))
}

// UpdateHandler partially updates an employee.
// PATCH /v1/employees/:id
// Returns 200 OK with the updated employee.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	patch, err := req.ToPatch(requestActor)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	employee, err := h.useCase.UpdateEmployee(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeToResponse(employee))
}

// DeleteHandler deletes an employee.
// DELETE /v1/employees/:id
// Returns 204 No Content.
func (h *EmployeeHandler) DeleteHandler(c *gin.Context) {
	if err := h.useCase.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseListQuery builds a query from URL parameters. Each sort parameter is
// "field" or "field,direction".
func (h *EmployeeHandler) parseListQuery(c *gin.Context) (usecase.EmployeeQuery, error) {
	var details []apperrors.ErrorDetail

	page, err := httputil.ParsePageRequest(c, h.defaultPageSize)
	if err != nil {
		failure := apperrors.ToFailure(err)
		details = append(details, failure.Details()...)
	}

	raw := c.QueryArray("sort")
	requests := make([]dto.SortRequest, 0, len(raw))
	for _, s := range raw {
		field, direction, _ := strings.Cut(s, ",")
		requests = append(requests, dto.SortRequest{
			Field:     strings.TrimSpace(field),
			Direction: strings.TrimSpace(direction),
		})
	}
	sorts, sortDetails := dto.ParseSorts(requests)
	details = append(details, sortDetails...)

	if len(details) > 0 {
		return usecase.EmployeeQuery{}, apperrors.NewValidationFailure(details...)
	}

	search := query.EmptySearch()
	for key, values := range c.Request.URL.Query() {
		if _, reserved := reservedParams[key]; reserved || len(values) == 0 {
			continue
		}
		search.Add(key, values[0])
	}

	return query.NewQuery[domain.SortField](&page, sorts, search).Unwrap()
}
