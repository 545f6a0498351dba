// Package domain defines the employee entity, its declared search schema, sortable
// fields and the failures raised by employee operations.
package domain

import (
	"strings"
	"time"
)

// ManagerClearSentinel is the managerId value that removes an existing manager link.
// It is matched case-insensitively.
const ManagerClearSentinel = "NULL"

// Employee is a stored employee record. ManagerID optionally references another
// employee; cycles are not prevented.
type Employee struct {
	ID          string
	Email       string
	Password    string //nolint:gosec // password hash, never plaintext once stored
	FullName    string
	PhoneNumber string
	Dob         *time.Time
	IsActive    bool
	Designation string
	ManagerID   *string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
}

// HasManager reports whether a manager is linked.
func (e *Employee) HasManager() bool {
	return e.ManagerID != nil && *e.ManagerID != ""
}

// EmployeePatch is a partial update. A nil field leaves the stored value untouched.
type EmployeePatch struct {
	Email       *string
	Password    *string //nolint:gosec // hashed before reaching storage
	FullName    *string
	PhoneNumber *string
	Dob         *time.Time
	IsActive    *bool
	Designation *string
	ManagerID   *string
	Address     *string
	UpdatedBy   *string
}

// ManagerChange is the effect a patch has on the manager link.
type ManagerChange int

const (
	// ManagerUnchanged keeps the current link.
	ManagerUnchanged ManagerChange = iota
	// ManagerCleared removes the link.
	ManagerCleared
	// ManagerAssigned points the link at another employee.
	ManagerAssigned
)

// ManagerChange classifies the patch's managerId.
func (p EmployeePatch) ManagerChange() ManagerChange {
	switch {
	case p.ManagerID == nil:
		return ManagerUnchanged
	case strings.EqualFold(strings.TrimSpace(*p.ManagerID), ManagerClearSentinel):
		return ManagerCleared
	default:
		return ManagerAssigned
	}
}

// ApplyTo merges every present field except the manager link into e.
func (p EmployeePatch) ApplyTo(e *Employee) {
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Password != nil {
		e.Password = *p.Password
	}
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = *p.PhoneNumber
	}
	if p.Dob != nil {
		dob := *p.Dob
		e.Dob = &dob
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.Designation != nil {
		e.Designation = *p.Designation
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	if p.UpdatedBy != nil {
		e.UpdatedBy = *p.UpdatedBy
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p EmployeePatch) IsEmpty() bool {
	return p == EmployeePatch{}
}
