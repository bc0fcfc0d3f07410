package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/argos/backend/internal/infrastructure/config"
	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/argos/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

type options struct {
	path     string
	logLevel string
	log      *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Argos database migration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Apply, roll back and inspect the Argos PostgreSQL schema.

Database settings are read from config.toml and ARGOS_DATABASE_* environment variables.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(&logger.Config{
				Level:      opts.logLevel,
				Format:     "console",
				Output:     "stdout",
				TimeFormat: "2006-01-02 15:04:05",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.log = log

			path, err := resolveMigrationsPath(opts.path)
			if err != nil {
				return err
			}
			opts.path = path
			log.Debug("Migration CLI started",
				zap.String("command", cmd.Name()),
				zap.String("migrations_path", path),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.path, "path", "", "Path to migrations directory (default: ./migrations)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newUpCommand(opts),
		newDownCommand(opts),
		newStepCommand(opts),
		newGotoCommand(opts),
		newVersionCommand(opts),
		newForceCommand(opts),
		newDropCommand(opts),
		newCreateCommand(opts),
		newListCommand(opts),
	)
	return root
}

// resolveMigrationsPath returns an absolute path, looking next to the binary when ./migrations is absent
func resolveMigrationsPath(path string) (string, error) {
	if path == "" {
		path = defaultMigrationsPath
		if _, err := os.Stat(path); err != nil {
			if execPath, err := os.Executable(); err == nil {
				candidate := filepath.Join(filepath.Dir(execPath), "..", "..", defaultMigrationsPath)
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
				}
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	return abs, nil
}

// withMigrator opens the configured database and runs fn against it
func withMigrator(opts *options, fn func(m *migration.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := migration.New(db, opts.path, opts.log)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	return fn(m)
}

func newUpCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return withMigrator(opts, func(m *migration.Migrator) error { return m.Up() })
		},
	}
}

func newDownCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return withMigrator(opts, func(m *migration.Migrator) error { return m.Down() })
		},
	}
}

func newStepCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "step <n>",
		Short: "Apply n migrations (positive=up, negative=down)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return withMigrator(opts, func(m *migration.Migrator) error { return m.Steps(n) })
		},
	}
}

func newGotoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <version>",
		Short: "Migrate to a specific version",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return withMigrator(opts, func(m *migration.Migrator) error { return m.GoTo(uint(version)) })
		},
	}
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return withMigrator(opts, func(m *migration.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if version == 0 {
					opts.log.Info("No migrations applied")
					return nil
				}
				opts.log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
				return nil
			})
		},
	}
}

func newForceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Force the recorded migration version (clears the dirty flag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			opts.log.Warn("Forcing migration version", zap.Int("version", version))
			return withMigrator(opts, func(m *migration.Migrator) error { return m.Force(version) })
		},
	}
}

func newDropCommand(opts *options) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop every database object",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !confirm {
				return errors.New("drop cancelled: pass --confirm to drop all database objects")
			}
			opts.log.Warn("Dropping all database objects")
			return withMigrator(opts, func(m *migration.Migrator) error { return m.Drop() })
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm dropping all database objects")
	return cmd
}

func newCreateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> [description]",
		Short: "Create a new up/down migration pair",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			description := ""
			if len(args) > 1 {
				description = args[1]
			}
			mf, err := migration.CreateMigration(opts.path, args[0], description)
			if err != nil {
				return fmt.Errorf("failed to create migration: %w", err)
			}
			opts.log.Info("Migration created",
				zap.String("version", mf.Version),
				zap.String("up_file", mf.UpPath),
				zap.String("down_file", mf.DownPath),
			)
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrations, err := migration.ListMigrations(opts.path)
			if err != nil {
				return fmt.Errorf("failed to list migrations: %w", err)
			}
			if len(migrations) == 0 {
				opts.log.Info("No migrations found")
				return nil
			}
			for _, name := range migrations {
				fmt.Fprintln(cmd.OutOrStdout(), "  -", name)
			}
			return nil
		},
	}
}
