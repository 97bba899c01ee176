package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"fintrack/internal/database"
	"fintrack/internal/logger"
)

const usage = "usage: migrate <up|down|version> [steps]"

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("migrate: %v", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", usage)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	m, err := migrate.New("file://migrations", dbConfig.URL())
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Get().Warnw("migrate close", "source_err", srcErr, "db_err", dbErr)
		}
	}()

	switch args[0] {
	case "up":
		return up(m)
	case "down":
		return down(m, args[1:])
	case "version":
		return version(m)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("up: %w", err)
	}
	logger.Get().Info("migrations applied")
	return nil
}

func down(m *migrate.Migrate, args []string) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid step count %q", args[0])
		}
		steps = n
	}
	if err := m.Steps(-steps); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("down: %w", err)
	}
	logger.Get().Infof("rolled back %d migration(s)", steps)
	return nil
}

func version(m *migrate.Migrate) error {
	v, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	logger.Get().Infow("migration status", "version", v, "dirty", dirty)
	return nil
}
