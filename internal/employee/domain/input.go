package domain

import (
	"strings"
	"time"
)

// CreateEmployeeInput holds the caller-supplied fields of a new employee. The
// password is plaintext until the service hashes it.
type CreateEmployeeInput struct {
	Email       string
	Password    string //nolint:gosec // hashed before storage
	FullName    string
	PhoneNumber string
	Dob         *time.Time
	IsActive    *bool
	Designation string
	ManagerID   *string
	Address     string
	CreatedBy   string
}

// ToEmployee builds the record to insert with id and timestamps at now. An absent
// IsActive defaults to true and the "NULL" manager sentinel means no manager.
func (in CreateEmployeeInput) ToEmployee(id string, now time.Time) *Employee {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	var managerID *string
	if in.ManagerID != nil {
		m := strings.TrimSpace(*in.ManagerID)
		if m != "" && !strings.EqualFold(m, ManagerClearSentinel) {
			managerID = &m
		}
	}

	return &Employee{
		ID:          id,
		Email:       NormalizeEmail(in.Email),
		Password:    in.Password,
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Dob:         in.Dob,
		IsActive:    active,
		Designation: strings.TrimSpace(in.Designation),
		ManagerID:   managerID,
		Address:     strings.TrimSpace(in.Address),
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   in.CreatedBy,
		UpdatedBy:   in.CreatedBy,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
