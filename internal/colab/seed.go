package colab

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/skyward/msplan/internal/colab/database"
	"github.com/skyward/msplan/internal/colab/database/repository"
)

// Demo rows provisioned into test databases. The fixed ids match what the
// collaboration test suites expect.
var (
	demoUsers = []repository.User{
		{ID: 8, Username: "a", EmailID: "a", Password: "a"},
		{ID: 9, Username: "b", EmailID: "b", Password: "b"},
		{ID: 10, Username: "c", EmailID: "c", Password: "c"},
	}

	demoProjects = []repository.Project{
		{ID: 1, Path: "one", Description: strptr("a, b")},
		{ID: 2, Path: "two", Description: strptr("b, c")},
		{ID: 3, Path: "three", Description: strptr("a, c")},
	}

	demoPermissions = []repository.Permission{
		{ID: 1, UserID: 8, ProjectID: 1, AccessLevel: "creator"},
		{ID: 2, UserID: 9, ProjectID: 1, AccessLevel: "collaborator"},
		{ID: 3, UserID: 9, ProjectID: 2, AccessLevel: "creator"},
		{ID: 4, UserID: 10, ProjectID: 2, AccessLevel: "collaborator"},
		{ID: 5, UserID: 10, ProjectID: 3, AccessLevel: "creator"},
		{ID: 6, UserID: 8, ProjectID: 3, AccessLevel: "collaborator"},
		{ID: 7, UserID: 10, ProjectID: 1, AccessLevel: "viewer"},
	}
)

// SeedDemoRows inserts the demo users, projects and permissions into db.
// Each user receives a fresh session token. All rows go in within a single
// transaction, so a failed seed leaves the database untouched.
func SeedDemoRows(ctx context.Context, db *sql.DB) error {
	return database.WithTx(db, func(tx *sql.Tx) error {
		users := repository.NewUserRepo(tx)
		projects := repository.NewProjectRepo(tx)
		permissions := repository.NewPermissionRepo(tx)

		for _, u := range demoUsers {
			token := uuid.NewString()
			u.Token = &token
			if err := users.Insert(ctx, u); err != nil {
				return err
			}
		}
		for _, p := range demoProjects {
			if err := projects.Insert(ctx, p); err != nil {
				return err
			}
		}
		for _, p := range demoPermissions {
			if err := permissions.Insert(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func strptr(s string) *string { return &s }
