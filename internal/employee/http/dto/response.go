package dto

import (
	"time"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/usecase"
)

// EmployeeResponse represents an employee in API responses. The password hash is
// never included.
type EmployeeResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Dob         *string   `json:"dob"`
	IsActive    bool      `json:"isActive"`
	Designation string    `json:"designation"`
	ManagerID   *string   `json:"managerId"`
	Address     string    `json:"address"`
	StartedAt   time.Time `json:"startedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MapEmployeeToResponse converts a domain employee to an API response.
func MapEmployeeToResponse(employee *domain.Employee) EmployeeResponse {
	response := EmployeeResponse{
		ID:          employee.ID,
		Email:       employee.Email,
		FullName:    employee.FullName,
		PhoneNumber: employee.PhoneNumber,
		IsActive:    employee.IsActive,
		Designation: employee.Designation,
		ManagerID:   employee.ManagerID,
		Address:     employee.Address,
		StartedAt:   employee.CreatedAt,
		UpdatedAt:   employee.UpdatedAt,
	}
	if employee.Dob != nil {
		dob := employee.Dob.Format(time.DateOnly)
		response.Dob = &dob
	}
	return response
}

// PageMeta describes the returned page.
type PageMeta struct {
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasNext bool `json:"has_next"`
}

// ListEmployeesResponse represents a page of employees in API responses.
type ListEmployeesResponse struct {
	Data []EmployeeResponse `json:"data"`
	Meta PageMeta           `json:"meta"`
}

// MapPageToListResponse converts a page of employees to a list API response.
func MapPageToListResponse(page *usecase.EmployeePage) ListEmployeesResponse {
	data := make([]EmployeeResponse, 0, len(page.Employees))
	for _, employee := range page.Employees {
		data = append(data, MapEmployeeToResponse(employee))
	}
	return ListEmployeesResponse{
		Data: data,
		Meta: PageMeta{
			Page:    page.Page,
			Size:    page.Size,
			HasNext: page.HasNext,
		},
	}
}
