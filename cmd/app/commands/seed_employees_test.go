package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/employees/internal/employee/domain"
	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
	employeeMocks "github.com/allisson/employees/internal/employee/usecase/mocks"
)

func TestRunSeedEmployees(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"email": "jane@example.com", "password": "StrongPass#1", "fullName": "Jane Doe",
		 "phoneNumber": "+1-555-0101", "designation": "Engineer"},
		{"email": "old@example.com", "password": "StrongPass#1", "fullName": "Old Timer",
		 "phoneNumber": "+1-555-0102", "designation": "Engineer"}
	]`), 0o600))

	expectSeed := func(t *testing.T) *employeeMocks.MockUseCase {
		mockUseCase := employeeMocks.NewMockUseCase(t)
		mockUseCase.On("CreateEmployee", ctx, mock.MatchedBy(func(in *domain.CreateEmployeeInput) bool {
			return in.Email == "jane@example.com"
		})).Return(storedEmployee(), nil).Once()
		mockUseCase.On("CreateEmployee", ctx, mock.MatchedBy(func(in *domain.CreateEmployeeInput) bool {
			return in.Email == "old@example.com"
		})).Return(nil, domain.EmailExistsFailure()).Once()
		return mockUseCase
	}

	t.Run("text-output", func(t *testing.T) {
		seeder := employeeUseCase.NewSeeder(expectSeed(t), logger)

		var out bytes.Buffer
		err := RunSeedEmployees(ctx, seeder, logger, path, "text", IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), "Created: 1")
		require.Contains(t, out.String(), "Skipped: 1")
	})

	t.Run("json-output", func(t *testing.T) {
		seeder := employeeUseCase.NewSeeder(expectSeed(t), logger)

		var out bytes.Buffer
		err := RunSeedEmployees(ctx, seeder, logger, path, "json", IOTuple{Writer: &out})
		require.NoError(t, err)

		var report map[string]int
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		require.Equal(t, map[string]int{"created": 1, "skipped": 1, "linked": 0}, report)
	})

	t.Run("missing-file", func(t *testing.T) {
		seeder := employeeUseCase.NewSeeder(employeeMocks.NewMockUseCase(t), logger)

		err := RunSeedEmployees(ctx, seeder, logger, filepath.Join(t.TempDir(), "absent.json"), "text",
			IOTuple{Writer: &bytes.Buffer{}})

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to seed employees")
	})
}
