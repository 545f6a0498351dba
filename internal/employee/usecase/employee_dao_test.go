package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/employees/internal/database/mocks"
	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/usecase"
	employeeMocks "github.com/allisson/employees/internal/employee/usecase/mocks"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

var errConnectionLost = errors.New("connection to server lost")

func ptr[T any](v T) *T {
	return &v
}

func newEmployee(id, email, fullName string) *domain.Employee {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &domain.Employee{
		ID:          id,
		Email:       email,
		Password:    "$argon2id$v=19$m=65536,t=3,p=4$hash",
		FullName:    fullName,
		PhoneNumber: "+1-510-555-1006",
		IsActive:    true,
		Designation: "Engineer",
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   "system",
		UpdatedBy:   "system",
	}
}

func newQuery(t *testing.T, page, size int, sorts []query.SortSpec[domain.SortField], search *query.Search) usecase.EmployeeQuery {
	t.Helper()
	p, failure := query.NewPageResult(page, size).Get()
	require.Nil(t, failure)
	q, failure := query.NewQuery(&p, sorts, search).Get()
	require.Nil(t, failure)
	return q
}

func sortSpec(t *testing.T, field domain.SortField, desc bool) query.SortSpec[domain.SortField] {
	t.Helper()
	build := query.Asc[domain.SortField]
	if desc {
		build = query.Desc[domain.SortField]
	}
	s, failure := build(field).Get()
	require.Nil(t, failure)
	return s
}

func requireDatabaseFailure(t *testing.T, failure *apperrors.OperationFailure, cause error) {
	t.Helper()
	require.NotNil(t, failure)
	assert.Equal(t, apperrors.KindInfrastructure, failure.Kind())
	details := failure.Details()
	require.Len(t, details, 1)
	assert.Equal(t, "database", details[0].Field)
	assert.Equal(t, domain.CodeDatabase, details[0].Code)
	assert.Contains(t, details[0].Message, cause.Error())
	assert.ErrorIs(t, failure, cause)
}

func TestEmployeeDAO_GetEmployees(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultOrderIsCreatedAtAscending", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employees := []*domain.Employee{newEmployee("1", "a@example.com", "Ann")}

		repo.On("FindPage", ctx, query.Filter(nil), []query.Order{{Column: "created_at"}, {Column: "id"}}, 20, 0).
			Return(employees, nil).
			Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		got, failure := dao.GetEmployees(ctx, query.DefaultQuery[domain.SortField]()).Get()

		require.Nil(t, failure)
		assert.Equal(t, employees, got)
	})

	t.Run("Success_NonUniqueSortGetsIDTieBreak", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		sorts := []query.SortSpec[domain.SortField]{sortSpec(t, domain.SortDesignation, false)}
		expectedOrder := []query.Order{
			{Column: "designation"},
			{Column: "id"},
		}

		repo.On("FindPage", ctx, query.Filter(nil), expectedOrder, 5, 5).
			Return([]*domain.Employee{}, nil).
			Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployees(ctx, newQuery(t, 1, 5, sorts, nil))

		assert.True(t, r.IsOk())
	})

	t.Run("Success_SortsApplyInPrecedenceOrder", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		sorts := []query.SortSpec[domain.SortField]{
			sortSpec(t, domain.SortFullName, true),
			sortSpec(t, domain.SortEmail, false),
		}
		expectedOrder := []query.Order{
			{Column: "full_name", Descending: true},
			{Column: "email", Descending: false},
			{Column: "id"},
		}

		repo.On("FindPage", ctx, query.Filter(nil), expectedOrder, 10, 20).
			Return([]*domain.Employee{}, nil).
			Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployees(ctx, newQuery(t, 2, 10, sorts, nil))

		assert.True(t, r.IsOk())
	})

	t.Run("Success_SearchBecomesCaseInsensitiveFilter", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		search := query.EmptySearch().Add("fullName", "AB").Add("designation", "eng")
		expectedFilter := query.Filter{
			{Field: "designation", Op: query.OpContainsCI, Value: "eng"},
			{Field: "fullName", Op: query.OpContainsCI, Value: "AB"},
		}
		matching := []*domain.Employee{newEmployee("1", "a@example.com", "Abby")}

		repo.On("FindPage", ctx, expectedFilter, mock.Anything, 20, 0).
			Return(matching, nil).
			Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		got, failure := dao.GetEmployees(ctx, newQuery(t, 0, 20, []query.SortSpec[domain.SortField]{}, search)).Get()

		require.Nil(t, failure)
		assert.Equal(t, matching, got)
	})

	t.Run("Success_NoMatchIsEmptyList", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		repo.On("FindPage", ctx, mock.Anything, mock.Anything, 20, 0).Return(nil, nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		got, failure := dao.GetEmployees(ctx, query.DefaultQuery[domain.SortField]()).Get()

		require.Nil(t, failure)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Error_UnknownSearchFieldShortCircuits", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		search := query.EmptySearch().Add("doesNotExist", "x").Add("fullName", "ab")

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployees(ctx, newQuery(t, 0, 20, []query.SortSpec[domain.SortField]{}, search))

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindValidation, r.Failure().Kind())
		assert.Equal(t, []apperrors.ErrorDetail{
			{Field: "doesNotExist", Message: "Invalid search field", Code: query.CodeInvalidSearchField},
		}, r.Failure().Details())
		repo.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_HiddenFieldIsNotSearchable", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		search := query.EmptySearch().Add("password", "secret")

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployees(ctx, newQuery(t, 0, 20, []query.SortSpec[domain.SortField]{}, search))

		require.False(t, r.IsOk())
		assert.True(t, r.Failure().HasCode(query.CodeInvalidSearchField))
	})

	t.Run("Error_UnmappedSortField", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		sorts := []query.SortSpec[domain.SortField]{sortSpec(t, domain.SortField("SALARY"), false)}

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployees(ctx, newQuery(t, 0, 20, sorts, nil))

		require.False(t, r.IsOk())
		assert.Equal(t, []string{domain.CodeInvalidSortField}, r.Failure().Codes())
	})

	t.Run("Error_StorageFailure", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		repo.On("FindPage", ctx, mock.Anything, mock.Anything, 20, 0).Return(nil, errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployees(ctx, query.DefaultQuery[domain.SortField]())

		require.False(t, r.IsOk())
		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})
}

func TestEmployeeDAO_GetEmployeesPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ExtraRowSetsHasNext", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		rows := []*domain.Employee{
			newEmployee("1", "a@example.com", "A"),
			newEmployee("2", "b@example.com", "B"),
			newEmployee("3", "c@example.com", "C"),
		}
		repo.On("FindPage", ctx, mock.Anything, mock.Anything, 3, 4).Return(rows, nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		window, failure := dao.GetEmployeesPage(ctx, newQuery(t, 2, 2, []query.SortSpec[domain.SortField]{}, nil)).Get()

		require.Nil(t, failure)
		assert.True(t, window.HasNext)
		assert.Equal(t, rows[:2], window.Employees)
	})

	t.Run("Success_LastPage", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		rows := []*domain.Employee{newEmployee("1", "a@example.com", "A")}
		repo.On("FindPage", ctx, mock.Anything, mock.Anything, 3, 0).Return(rows, nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		window, failure := dao.GetEmployeesPage(ctx, newQuery(t, 0, 2, []query.SortSpec[domain.SortField]{}, nil)).Get()

		require.Nil(t, failure)
		assert.False(t, window.HasNext)
		assert.Equal(t, rows, window.Employees)
	})
}

func TestEmployeeDAO_GetEmployeeByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Found", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("1", "a@example.com", "Ann")
		repo.On("FindByID", ctx, "1").Return(employee, nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		found, failure := dao.GetEmployeeByID(ctx, "1").Get()

		require.Nil(t, failure)
		got, ok := found.Get()
		assert.True(t, ok)
		assert.Same(t, employee, got)
	})

	t.Run("Success_AbsentIsNotAFailure", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		repo.On("FindByID", ctx, "missing").Return(nil, domain.ErrEmployeeNotFound).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		found, failure := dao.GetEmployeeByID(ctx, "missing").Get()

		require.Nil(t, failure)
		assert.False(t, found.IsPresent())
	})

	t.Run("Error_StorageFailure", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		repo.On("FindByID", ctx, "1").Return(nil, errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.GetEmployeeByID(ctx, "1")

		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})
}

func TestEmployeeDAO_CreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Inserted", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("1", "a@example.com", "Ann")
		repo.On("ExistsByEmail", ctx, "a@example.com").Return(false, nil).Once()
		repo.On("Insert", ctx, employee).Return(nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		got, failure := dao.CreateEmployee(ctx, employee).Get()

		require.Nil(t, failure)
		assert.Same(t, employee, got)
	})

	t.Run("Success_WithExistingManager", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("2", "b@example.com", "Bob")
		employee.ManagerID = ptr("1")
		repo.On("ExistsByEmail", ctx, "b@example.com").Return(false, nil).Once()
		repo.On("ExistsByID", ctx, "1").Return(true, nil).Once()
		repo.On("Insert", ctx, employee).Return(nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, employee)

		assert.True(t, r.IsOk())
	})

	t.Run("Error_EmailExistsPerformsNoWrite", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("1", "a@example.com", "Ann")
		repo.On("ExistsByEmail", ctx, "a@example.com").Return(true, nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, employee)

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindResourceConflict, r.Failure().Kind())
		assert.Equal(t, []apperrors.ErrorDetail{
			{Field: "email", Message: "Email already exists", Code: domain.CodeEmailExists},
		}, r.Failure().Details())
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Error_ManagerNotFound", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("2", "b@example.com", "Bob")
		employee.ManagerID = ptr("no-such-id")
		repo.On("ExistsByEmail", ctx, "b@example.com").Return(false, nil).Once()
		repo.On("ExistsByID", ctx, "no-such-id").Return(false, nil).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, employee)

		require.False(t, r.IsOk())
		assert.Equal(t, []string{domain.CodeManagerNotFound}, r.Failure().Codes())
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Error_RacingEmailInsertIsConflict", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("1", "a@example.com", "Ann")
		raceErr := fmt.Errorf("%w: pq: duplicate key value violates unique constraint", domain.ErrEmailAlreadyExists)
		repo.On("ExistsByEmail", ctx, "a@example.com").Return(false, nil).Once()
		repo.On("Insert", ctx, employee).Return(raceErr).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, employee)

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindResourceConflict, r.Failure().Kind())
		assert.Equal(t, []string{domain.CodeEmailExists}, r.Failure().Codes())
	})

	t.Run("Error_OtherUniqueViolationIsDuplicateKey", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("1", "a@example.com", "Ann")
		dupErr := fmt.Errorf("%w: employees_pkey", domain.ErrDuplicateKey)
		repo.On("ExistsByEmail", ctx, "a@example.com").Return(false, nil).Once()
		repo.On("Insert", ctx, employee).Return(dupErr).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, employee)

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindValidation, r.Failure().Kind())
		assert.Equal(t, []string{domain.CodeDuplicateKey}, r.Failure().Codes())
	})

	t.Run("Error_PreCheckStorageFailure", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		repo.On("ExistsByEmail", ctx, "a@example.com").Return(false, errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, newEmployee("1", "a@example.com", "Ann"))

		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})

	t.Run("Error_InsertStorageFailure", func(t *testing.T) {
		repo := employeeMocks.NewMockEmployeeRepository(t)
		employee := newEmployee("1", "a@example.com", "Ann")
		repo.On("ExistsByEmail", ctx, "a@example.com").Return(false, nil).Once()
		repo.On("Insert", ctx, employee).Return(errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(databaseMocks.NewMockTxManager(t), repo)
		r := dao.CreateEmployee(ctx, employee)

		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})
}

func TestEmployeeDAO_UpdateEmployee(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*databaseMocks.MockTxManager, *employeeMocks.MockEmployeeRepository) {
		txManager := databaseMocks.NewMockTxManager(t)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		return txManager, employeeMocks.NewMockEmployeeRepository(t)
	}

	t.Run("Success_PartialMerge", func(t *testing.T) {
		txManager, repo := setup(t)
		current := newEmployee("1", "a@example.com", "Ann")
		current.ManagerID = ptr("9")
		createdAt := current.CreatedAt

		repo.On("FindByIDForUpdate", ctx, "1").Return(current, nil).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Employee")).Return(nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		got, failure := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{
			Designation: ptr("Staff Engineer"),
			IsActive:    ptr(false),
		}).Get()

		require.Nil(t, failure)
		assert.Equal(t, "Staff Engineer", got.Designation)
		assert.False(t, got.IsActive)
		assert.Equal(t, "Ann", got.FullName)
		assert.Equal(t, "a@example.com", got.Email)
		assert.Equal(t, ptr("9"), got.ManagerID)
		assert.Equal(t, createdAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(createdAt))
	})

	t.Run("Success_NullSentinelClearsManager", func(t *testing.T) {
		txManager, repo := setup(t)
		current := newEmployee("1", "a@example.com", "Ann")
		current.ManagerID = ptr("9")

		repo.On("FindByIDForUpdate", ctx, "1").Return(current, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
			return e.ManagerID == nil
		})).Return(nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		got, failure := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{ManagerID: ptr("null")}).Get()

		require.Nil(t, failure)
		assert.Nil(t, got.ManagerID)
		assert.False(t, got.HasManager())
	})

	t.Run("Success_AssignsExistingManager", func(t *testing.T) {
		txManager, repo := setup(t)
		current := newEmployee("1", "a@example.com", "Ann")

		repo.On("FindByIDForUpdate", ctx, "1").Return(current, nil).Once()
		repo.On("ExistsByID", ctx, "2").Return(true, nil).Once()
		repo.On("Update", ctx, current).Return(nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		got, failure := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{ManagerID: ptr(" 2 ")}).Get()

		require.Nil(t, failure)
		assert.Equal(t, ptr("2"), got.ManagerID)
	})

	t.Run("Error_SelfManager", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("FindByIDForUpdate", ctx, "1").Return(newEmployee("1", "a@example.com", "Ann"), nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{ManagerID: ptr("1")})

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindValidation, r.Failure().Kind())
		assert.Equal(t, []string{domain.CodeSelfManager}, r.Failure().Codes())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error_ManagerNotFound", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("FindByIDForUpdate", ctx, "1").Return(newEmployee("1", "a@example.com", "Ann"), nil).Once()
		repo.On("ExistsByID", ctx, "no-such-id").Return(false, nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{ManagerID: ptr("no-such-id")})

		require.False(t, r.IsOk())
		assert.Equal(t, []string{domain.CodeManagerNotFound}, r.Failure().Codes())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error_EmployeeNotFound", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("FindByIDForUpdate", ctx, "missing").Return(nil, domain.ErrEmployeeNotFound).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "missing", domain.EmployeePatch{FullName: ptr("Someone")})

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindResourceNotFound, r.Failure().Kind())
		assert.Equal(t, []string{domain.CodeEmployeeNotFound}, r.Failure().Codes())
	})

	t.Run("Error_NewEmailTaken", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("FindByIDForUpdate", ctx, "1").Return(newEmployee("1", "a@example.com", "Ann"), nil).Once()
		repo.On("ExistsByEmail", ctx, "b@example.com").Return(true, nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{Email: ptr("b@example.com")})

		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindResourceConflict, r.Failure().Kind())
		assert.Equal(t, []string{domain.CodeEmailExists}, r.Failure().Codes())
	})

	t.Run("Error_LookupStorageFailure", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("FindByIDForUpdate", ctx, "1").Return(nil, errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{FullName: ptr("Someone")})

		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})

	t.Run("Error_WriteStorageFailure", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("FindByIDForUpdate", ctx, "1").Return(newEmployee("1", "a@example.com", "Ann"), nil).Once()
		repo.On("Update", ctx, mock.Anything).Return(errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{FullName: ptr("Someone")})

		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})

	t.Run("Error_TransactionFailure", func(t *testing.T) {
		txManager := databaseMocks.NewMockTxManager(t)
		repo := employeeMocks.NewMockEmployeeRepository(t)
		txManager.On("WithTx", ctx, mock.Anything).Return(errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		r := dao.UpdateEmployee(ctx, "1", domain.EmployeePatch{FullName: ptr("Someone")})

		requireDatabaseFailure(t, r.Failure(), errConnectionLost)
	})
}

func TestEmployeeDAO_DeleteEmployee(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*databaseMocks.MockTxManager, *employeeMocks.MockEmployeeRepository) {
		txManager := databaseMocks.NewMockTxManager(t)
		txManager.On("WithTx", ctx, mock.Anything).Return(nil).Once()
		return txManager, employeeMocks.NewMockEmployeeRepository(t)
	}

	t.Run("Success_Deleted", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("ExistsByID", ctx, "1").Return(true, nil).Once()
		repo.On("Delete", ctx, "1").Return(nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)

		assert.Nil(t, dao.DeleteEmployee(ctx, "1"))
	})

	t.Run("Error_Missing", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("ExistsByID", ctx, "missing").Return(false, nil).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)
		failure := dao.DeleteEmployee(ctx, "missing")

		require.NotNil(t, failure)
		assert.Equal(t, apperrors.KindResourceNotFound, failure.Kind())
		assert.Equal(t, []string{domain.CodeEmployeeNotFound}, failure.Codes())
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Error_ExistsStorageFailure", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("ExistsByID", ctx, "1").Return(false, errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)

		requireDatabaseFailure(t, dao.DeleteEmployee(ctx, "1"), errConnectionLost)
	})

	t.Run("Error_DeleteStorageFailure", func(t *testing.T) {
		txManager, repo := setup(t)
		repo.On("ExistsByID", ctx, "1").Return(true, nil).Once()
		repo.On("Delete", ctx, "1").Return(errConnectionLost).Once()

		dao := usecase.NewEmployeeDAO(txManager, repo)

		requireDatabaseFailure(t, dao.DeleteEmployee(ctx, "1"), errConnectionLost)
	})
}
