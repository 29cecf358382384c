package colab

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skyward/msplan/internal/colab/database"
	"github.com/skyward/msplan/internal/colab/database/repository"
	"github.com/skyward/msplan/internal/ftml"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("database/migrations")
	require.NoError(t, err)
	return dir
}

func TestSeedDemoRows(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbPath := filepath.Join(t.TempDir(), "mscolab.db")
	require.NoError(t, database.RunMigrations(dbPath, migrationsDir(t)))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDemoRows(ctx, db))

	users, err := repository.NewUserRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, int64(8), users[0].ID)
	require.Equal(t, "a", users[0].Username)
	require.NotNil(t, users[0].Token)

	projects, err := repository.NewProjectRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "one", projects[0].Path)

	perms := repository.NewPermissionRepo(db)
	count, err := perms.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, count)

	onOne, err := perms.ListForProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, onOne, 3)
	require.Equal(t, "creator", onOne[0].AccessLevel)
	require.Equal(t, "viewer", onOne[2].AccessLevel)
}

func TestSeedDemoRowsRejectsReseed(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbPath := filepath.Join(t.TempDir(), "mscolab.db")
	require.NoError(t, database.RunMigrations(dbPath, migrationsDir(t)))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDemoRows(ctx, db))
	require.Error(t, SeedDemoRows(ctx, db), "fixed primary keys collide on a second run")

	// the failed run rolls back completely
	users, err := repository.NewUserRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	count, err := repository.NewPermissionRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, count)
}

func TestProvisionTest(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	base := t.TempDir()
	s := &Seeder{
		TestBaseDir:   base,
		MigrationsDir: migrationsDir(t),
		Log:           slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	require.NoError(t, s.ProvisionTest(ctx))

	for _, project := range sampleProjects {
		trackFile := filepath.Join(base, "colabdata", "filedata", project, "main.ftml")
		name, wps, err := ftml.Load(trackFile)
		require.NoError(t, err)
		require.Equal(t, project, name)
		require.Len(t, wps, 2)

		_, err = os.Stat(filepath.Join(base, "colabdata", "filedata", project, ".git"))
		require.NoError(t, err, "sample file must live in a git repository")
	}

	db, err := database.Open(filepath.Join(base, "colabdata", "mscolab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	users, err := repository.NewUserRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
}

func TestProvisionDeployIdempotent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	base := t.TempDir()
	s := &Seeder{
		BaseDir:       base,
		MigrationsDir: migrationsDir(t),
		Log:           slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	require.NoError(t, s.ProvisionDeploy(ctx))
	require.NoError(t, s.ProvisionDeploy(ctx), "existing data is left untouched")

	_, err := os.Stat(filepath.Join(base, "colabdata", "mscolab.db"))
	require.NoError(t, err)
}
