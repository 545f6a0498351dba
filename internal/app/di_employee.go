package app

import (
	"fmt"
	"sync"

	"github.com/allisson/go-pwdhash"

	"github.com/allisson/employees/internal/database"
	"github.com/allisson/employees/internal/employee/export"
	employeeHTTP "github.com/allisson/employees/internal/employee/http"
	employeeRepository "github.com/allisson/employees/internal/employee/repository"
	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
)

// employeeComponents holds the lazily built employee dependencies.
type employeeComponents struct {
	employeeRepo     employeeUseCase.EmployeeRepository
	employeeDAO      employeeUseCase.EmployeeDAO
	passwordHasher   employeeUseCase.PasswordHasher
	employeeUseCase  employeeUseCase.UseCase
	employeeExporter *export.Exporter
	employeeHandler  *employeeHTTP.EmployeeHandler

	employeeRepoInit     sync.Once
	employeeDAOInit      sync.Once
	passwordHasherInit   sync.Once
	employeeUseCaseInit  sync.Once
	employeeExporterInit sync.Once
	employeeHandlerInit  sync.Once
}

// EmployeeRepository returns the employee repository for the configured driver.
func (c *Container) EmployeeRepository() (employeeUseCase.EmployeeRepository, error) {
	err := c.once("employeeRepo", &c.employeeRepoInit, func() (err error) {
		c.employeeRepo, err = c.initEmployeeRepository()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.employeeRepo, nil
}

// EmployeeDAO returns the employee query execution engine.
func (c *Container) EmployeeDAO() (employeeUseCase.EmployeeDAO, error) {
	err := c.once("employeeDAO", &c.employeeDAOInit, func() (err error) {
		c.employeeDAO, err = c.initEmployeeDAO()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.employeeDAO, nil
}

// PasswordHasher returns the Argon2id password hasher.
func (c *Container) PasswordHasher() (employeeUseCase.PasswordHasher, error) {
	err := c.once("passwordHasher", &c.passwordHasherInit, func() error {
		hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
		if err != nil {
			return fmt.Errorf("failed to create password hasher: %w", err)
		}
		c.passwordHasher = hasher
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.passwordHasher, nil
}

// EmployeeUseCase returns the employee service, wrapped with metrics when enabled.
func (c *Container) EmployeeUseCase() (employeeUseCase.UseCase, error) {
	err := c.once("employeeUseCase", &c.employeeUseCaseInit, func() (err error) {
		c.employeeUseCase, err = c.initEmployeeUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.employeeUseCase, nil
}

// EmployeeExporter returns the directory exporter.
func (c *Container) EmployeeExporter() (*export.Exporter, error) {
	err := c.once("employeeExporter", &c.employeeExporterInit, func() error {
		useCase, err := c.EmployeeUseCase()
		if err != nil {
			return fmt.Errorf("failed to get employee use case for exporter: %w", err)
		}
		c.employeeExporter = export.NewExporter(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.employeeExporter, nil
}

// EmployeeHandler returns the employee HTTP handler.
func (c *Container) EmployeeHandler() (*employeeHTTP.EmployeeHandler, error) {
	err := c.once("employeeHandler", &c.employeeHandlerInit, func() error {
		useCase, err := c.EmployeeUseCase()
		if err != nil {
			return fmt.Errorf("failed to get employee use case for employee handler: %w", err)
		}
		exporter, err := c.EmployeeExporter()
		if err != nil {
			return err
		}
		c.employeeHandler = employeeHTTP.NewEmployeeHandler(useCase, exporter, c.config.PageDefaultSize, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.employeeHandler, nil
}

// EmployeeSeeder returns a seeder writing through the employee service.
func (c *Container) EmployeeSeeder() (*employeeUseCase.Seeder, error) {
	useCase, err := c.EmployeeUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get employee use case for seeder: %w", err)
	}
	return employeeUseCase.NewSeeder(useCase, c.Logger()), nil
}

// initEmployeeRepository selects the repository matching the database driver.
func (c *Container) initEmployeeRepository() (employeeUseCase.EmployeeRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for employee repository: %w", err)
	}

	switch {
	case database.IsPostgres(c.config.DBDriver):
		return employeeRepository.NewPostgreSQLEmployeeRepository(db), nil
	case c.config.DBDriver == database.DriverMySQL:
		return employeeRepository.NewMySQLEmployeeRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initEmployeeDAO() (employeeUseCase.EmployeeDAO, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for employee dao: %w", err)
	}

	repo, err := c.EmployeeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get employee repository for employee dao: %w", err)
	}

	return employeeUseCase.NewEmployeeDAO(txManager, repo), nil
}

// initEmployeeUseCase creates the employee service with all its dependencies.
func (c *Container) initEmployeeUseCase() (employeeUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for employee use case: %w", err)
	}

	dao, err := c.EmployeeDAO()
	if err != nil {
		return nil, err
	}

	hasher, err := c.PasswordHasher()
	if err != nil {
		return nil, err
	}

	var outboxRepo employeeUseCase.OutboxEventRepository
	if c.config.EventsEnabled {
		repo, err := c.OutboxRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get outbox repository for employee use case: %w", err)
		}
		outboxRepo = repo
	}

	baseUseCase := employeeUseCase.NewEmployeeUseCase(txManager, dao, outboxRepo, hasher)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for employee use case: %w", err)
		}
		return employeeUseCase.NewEmployeeUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
