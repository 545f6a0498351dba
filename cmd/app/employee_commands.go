package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/employees/cmd/app/commands"
	"github.com/allisson/employees/internal/app"
	"github.com/allisson/employees/internal/config"
	"github.com/allisson/employees/internal/employee/http/dto"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getEmployeeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-employee",
			Usage: "Create a new employee",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true, Usage: "Email address"},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to be prompted)",
				},
				&cli.StringFlag{Name: "full-name", Aliases: []string{"n"}, Required: true, Usage: "Full name"},
				&cli.StringFlag{Name: "phone", Required: true, Usage: "Phone number"},
				&cli.StringFlag{Name: "dob", Usage: "Date of birth in YYYY-MM-DD format"},
				&cli.StringFlag{Name: "designation", Aliases: []string{"d"}, Required: true, Usage: "Job title"},
				&cli.StringFlag{Name: "manager-id", Aliases: []string{"m"}, Usage: "Manager employee ID"},
				&cli.StringFlag{Name: "address", Usage: "Postal address"},
				&cli.BoolFlag{
					Name:    "active",
					Aliases: []string{"a"},
					Value:   true,
					Usage:   "Whether the employee is active",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.EmployeeUseCase()
				if err != nil {
					return err
				}

				isActive := cmd.Bool("active")
				request := dto.CreateEmployeeRequest{
					Email:       cmd.String("email"),
					Password:    cmd.String("password"),
					FullName:    cmd.String("full-name"),
					PhoneNumber: cmd.String("phone"),
					Dob:         cmd.String("dob"),
					IsActive:    &isActive,
					Designation: cmd.String("designation"),
					Address:     cmd.String("address"),
				}
				if managerID := cmd.String("manager-id"); managerID != "" {
					request.ManagerID = &managerID
				}

				return commands.RunCreateEmployee(
					ctx,
					useCase,
					container.Logger(),
					request,
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "seed-employees",
			Usage: "Create employees from a JSON file, skipping existing emails",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Usage:   "Seed file path (defaults to SEED_FILE)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				seeder, err := container.EmployeeSeeder()
				if err != nil {
					return err
				}

				path := cmd.String("file")
				if path == "" {
					path = cfg.SeedFile
				}

				return commands.RunSeedEmployees(
					ctx,
					seeder,
					container.Logger(),
					path,
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "export-employees",
			Usage: "Export the employee directory as CSV or PDF",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "csv",
					Usage:   "Export format: 'csv' or 'pdf'",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Output file (defaults to stdout)",
				},
				&cli.StringSliceFlag{
					Name:    "sort",
					Aliases: []string{"s"},
					Usage:   "Sort as field[,asc|desc]; repeatable",
				},
				&cli.StringSliceFlag{
					Name:  "search",
					Usage: "Search criterion as field=value; repeatable",
				},
				&cli.IntFlag{
					Name:  "size",
					Value: 1000,
					Usage: "Rows fetched per database round trip",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				exporter, err := container.EmployeeExporter()
				if err != nil {
					return err
				}

				return commands.RunExportEmployees(
					ctx,
					exporter,
					container.Logger(),
					commands.ExportOptions{
						Format: cmd.String("format"),
						Output: cmd.String("output"),
						Sorts:  cmd.StringSlice("sort"),
						Search: cmd.StringSlice("search"),
						Size:   int(cmd.Int("size")),
					},
					commands.DefaultIO().Writer,
				)
			},
		},
	}
}
