// Package colab provisions the collaboration backend's working data: the
// colabdata directory tree, sample flight-track repositories, and the sqlite
// database with its demo rows.
package colab

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/skyward/msplan/internal/colab/database"
)

// Seeder provisions collaboration data under a base directory.
type Seeder struct {
	// BaseDir is the deployment data root.
	BaseDir string
	// TestBaseDir is the ephemeral root recreated by ProvisionTest.
	TestBaseDir string
	// MigrationsDir holds the SQL migrations for the colab database.
	MigrationsDir string

	Log *slog.Logger
}

// ProvisionTest recreates the test colabdata tree from scratch: sample
// project repositories, a fresh database and the demo rows.
func (s *Seeder) ProvisionTest(ctx context.Context) error {
	colabdata := filepath.Join(s.TestBaseDir, "colabdata")
	if err := os.RemoveAll(colabdata); err != nil {
		return fmt.Errorf("reset %s: %w", colabdata, err)
	}
	if err := os.MkdirAll(colabdata, 0o755); err != nil {
		return err
	}
	s.Log.Info("test data directory recreated", "dir", colabdata)

	if err := s.createSampleFiles(ctx, filepath.Join(colabdata, "filedata")); err != nil {
		return err
	}

	dbPath := filepath.Join(colabdata, "mscolab.db")
	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.RunMigrationsWithDB(db, s.MigrationsDir); err != nil {
		return fmt.Errorf("migrate %s: %w", dbPath, err)
	}

	if err := SeedDemoRows(ctx, db); err != nil {
		return fmt.Errorf("seed demo rows: %w", err)
	}
	s.Log.Info("test database provisioned", "path", dbPath)
	return nil
}

// ProvisionDeploy creates the deployment directories and an empty migrated
// database. Existing data is left untouched.
func (s *Seeder) ProvisionDeploy(ctx context.Context) error {
	colabdata := filepath.Join(s.BaseDir, "colabdata")
	if err := os.MkdirAll(filepath.Join(colabdata, "filedata"), 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(colabdata, "mscolab.db")
	if _, err := os.Stat(dbPath); err == nil {
		s.Log.Info("database exists", "path", dbPath)
		return nil
	}
	if err := database.RunMigrations(dbPath, s.MigrationsDir); err != nil {
		return fmt.Errorf("migrate %s: %w", dbPath, err)
	}
	s.Log.Info("deployment database provisioned", "path", dbPath)
	return nil
}
