package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

// SeedEmployee is one record of a seed file. Managers are referenced by email since
// ids are generated on creation.
type SeedEmployee struct {
	Email        string `json:"email"`
	Password     string `json:"password"` //nolint:gosec // plaintext seed, hashed on creation
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	Dob          string `json:"dob"`
	IsActive     *bool  `json:"isActive"`
	Designation  string `json:"designation"`
	ManagerEmail string `json:"managerEmail"`
	Address      string `json:"address"`
}

// SeedReport counts what a seed run did.
type SeedReport struct {
	Created int
	Skipped int
	Linked  int
}

// Seeder loads employees from JSON through the employee service.
type Seeder struct {
	useCase UseCase
	logger  *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(useCase UseCase, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Seeder{useCase: useCase, logger: logger}
}

// SeedFile seeds from the JSON file at path.
func (s *Seeder) SeedFile(ctx context.Context, path string) (*SeedReport, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open seed file")
	}
	defer func() {
		_ = f.Close()
	}()
	return s.Seed(ctx, f)
}

// Seed creates every employee in the JSON array read from r, skipping emails that
// already exist, then links managers in a second pass.
func (s *Seeder) Seed(ctx context.Context, r io.Reader) (*SeedReport, error) {
	var records []SeedEmployee
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode seed file")
	}

	s.logger.Info("seeding employees", slog.Int("records", len(records)))

	report := &SeedReport{}
	ids := make(map[string]string, len(records))

	for _, record := range records {
		input, err := record.toInput()
		if err != nil {
			return report, err
		}

		employee, err := s.useCase.CreateEmployee(ctx, input)
		if err != nil {
			if failure, ok := apperrors.AsFailure(err); ok && failure.HasCode(domain.CodeEmailExists) {
				s.logger.Info("employee already exists, skipping", slog.String("email", input.Email))
				report.Skipped++
				continue
			}
			return report, apperrors.Wrapf(err, "failed to seed employee %s", input.Email)
		}

		ids[employee.Email] = employee.ID
		report.Created++
		s.logger.Debug("seeded employee", slog.String("email", employee.Email), slog.String("id", employee.ID))
	}

	for _, record := range records {
		if strings.TrimSpace(record.ManagerEmail) == "" {
			continue
		}

		employeeID, err := s.resolveID(ctx, ids, record.Email)
		if err != nil {
			return report, err
		}
		managerID, err := s.resolveID(ctx, ids, record.ManagerEmail)
		if err != nil {
			return report, err
		}

		if _, err := s.useCase.UpdateEmployee(ctx, employeeID, domain.EmployeePatch{ManagerID: &managerID}); err != nil {
			return report, apperrors.Wrapf(err, "failed to link manager of %s", record.Email)
		}
		report.Linked++
	}

	s.logger.Info("employee seeding completed",
		slog.Int("created", report.Created),
		slog.Int("skipped", report.Skipped),
		slog.Int("linked", report.Linked),
	)
	return report, nil
}

// resolveID finds the id of email among the employees created by this run, falling
// back to an exact lookup in storage for employees that already existed.
func (s *Seeder) resolveID(ctx context.Context, ids map[string]string, email string) (string, error) {
	email = domain.NormalizeEmail(email)
	if id, ok := ids[email]; ok {
		return id, nil
	}

	page, failure := query.NewPageResult(0, query.MaxPageSize).Get()
	if failure != nil {
		return "", failure
	}
	q, failure := query.NewQuery(&page, []query.SortSpec[domain.SortField]{}, query.EmptySearch().Add("email", email)).Get()
	if failure != nil {
		return "", failure
	}

	found, err := s.useCase.ListEmployees(ctx, q)
	if err != nil {
		return "", apperrors.Wrapf(err, "failed to look up employee %s", email)
	}
	for _, employee := range found.Employees {
		if strings.EqualFold(employee.Email, email) {
			ids[email] = employee.ID
			return employee.ID, nil
		}
	}
	return "", apperrors.Wrapf(apperrors.ErrNotFound, "employee %s not found", email)
}

func (r SeedEmployee) toInput() (*domain.CreateEmployeeInput, error) {
	input := &domain.CreateEmployeeInput{
		Email:       r.Email,
		Password:    r.Password,
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		IsActive:    r.IsActive,
		Designation: r.Designation,
		Address:     r.Address,
		CreatedBy:   "seeder",
	}
	if r.Dob != "" {
		dob, err := time.Parse(time.DateOnly, r.Dob)
		if err != nil {
			return nil, apperrors.Wrapf(err, "invalid dob for %s", r.Email)
		}
		input.Dob = &dob
	}
	return input, nil
}
