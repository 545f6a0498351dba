package domain

import "time"

// Employee lifecycle event types written to the outbox.
const (
	EventEmployeeCreated = "employee.created"
	EventEmployeeUpdated = "employee.updated"
	EventEmployeeDeleted = "employee.deleted"
)

// EventPayload is the JSON body of an employee lifecycle event. It never carries
// the password.
type EventPayload struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	Designation string    `json:"designation,omitempty"`
	ManagerID   *string   `json:"manager_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewEventPayload describes e at time at.
func NewEventPayload(e *Employee, at time.Time) EventPayload {
	return EventPayload{
		ID:          e.ID,
		Email:       e.Email,
		FullName:    e.FullName,
		Designation: e.Designation,
		ManagerID:   e.ManagerID,
		OccurredAt:  at.UTC(),
	}
}
