package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/allisson/employees/internal/employee/domain"
)

var csvHeader = []string{
	"id",
	"email",
	"full_name",
	"phone_number",
	"dob",
	"is_active",
	"designation",
	"manager_id",
	"address",
	"started_at",
}

type csvRenderer struct{}

func (csvRenderer) Render(w io.Writer, employees []*domain.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range employees {
		if err := cw.Write(csvRecord(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(e *domain.Employee) []string {
	return []string{
		e.ID,
		e.Email,
		e.FullName,
		e.PhoneNumber,
		formatDob(e.Dob),
		strconv.FormatBool(e.IsActive),
		e.Designation,
		valueOr(e.ManagerID, ""),
		e.Address,
		e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatDob(dob *time.Time) string {
	if dob == nil {
		return ""
	}
	return dob.Format(time.DateOnly)
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
