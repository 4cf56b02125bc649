// Command migrate manages the database schema outside the server process.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/latitune-backend/internal/adapter/postgres"
	"github.com/heartmarshall/latitune-backend/internal/app"
	"github.com/heartmarshall/latitune-backend/internal/config"
)

var errResetRefused = errors.New("reset drops every table; run with dev.local enabled or pass --force")

// runner holds what each subcommand needs once the database is open.
type runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	migrator *postgres.Migrator
	out      io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var r runner
	cmd := &cli.Command{
		Name:    "migrate",
		Usage:   "Manage the latitune database schema",
		Version: app.Version,
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Apply every pending migration",
				Action: r.with((*runner).up),
			},
			{
				Name:   "down",
				Usage:  "Roll back the most recent migration",
				Action: r.with((*runner).down),
			},
			{
				Name:   "status",
				Usage:  "List migrations and whether they are applied",
				Action: r.with((*runner).status),
			},
			{
				Name:   "version",
				Usage:  "Print the current schema version",
				Action: r.with((*runner).version),
			},
			{
				Name:  "reset",
				Usage: "Drop every table and re-apply all migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Allow reset against a non-local database",
					},
				},
				Action: r.with((*runner).reset),
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

// with opens the database, runs fn and closes the connections afterwards.
func (r *runner) with(fn func(*runner, context.Context, *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		r.cfg = cfg
		r.logger = app.NewLogger(cfg.Log)
		r.out = os.Stdout

		pool, err := postgres.NewPool(ctx, cfg.DSN(), cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		db := stdlib.OpenDBFromPool(pool)
		defer func(db *sql.DB) { _ = db.Close() }(db)

		r.migrator, err = postgres.NewMigrator(db)
		if err != nil {
			return err
		}

		return fn(r, ctx, cmd)
	}
}

func (r *runner) up(ctx context.Context, _ *cli.Command) error {
	applied, err := r.migrator.Up(ctx)
	if err != nil {
		return err
	}
	r.logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}

func (r *runner) down(ctx context.Context, _ *cli.Command) error {
	if err := r.migrator.Down(ctx); err != nil {
		return err
	}
	r.logger.Info("rolled back one migration")
	return nil
}

func (r *runner) status(ctx context.Context, _ *cli.Command) error {
	states, err := r.migrator.Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tAPPLIED\tAPPLIED AT\tFILE")
	for _, s := range states {
		appliedAt := "-"
		if s.Applied {
			appliedAt = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%t\t%s\t%s\n", s.Version, s.Applied, appliedAt, s.Path)
	}
	return tw.Flush()
}

func (r *runner) version(ctx context.Context, _ *cli.Command) error {
	v, err := r.migrator.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, v)
	return nil
}

func (r *runner) reset(ctx context.Context, cmd *cli.Command) error {
	if !r.cfg.Dev.Local && !cmd.Bool("force") {
		return errResetRefused
	}
	if err := r.migrator.Reset(ctx); err != nil {
		return err
	}
	r.logger.Warn("schema reset", slog.Bool("local", r.cfg.Dev.Local))
	return nil
}
