package repository

import "context"

// PermissionRepo handles permissions.
type PermissionRepo struct {
	db DBTX
}

func NewPermissionRepo(db DBTX) *PermissionRepo {
	return &PermissionRepo{db: db}
}

func (r *PermissionRepo) Insert(ctx context.Context, p Permission) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO permissions(id, u_id, p_id, access_level)
	VALUES (?, ?, ?, ?);
	`, p.ID, p.UserID, p.ProjectID, p.AccessLevel)
	return err
}

// ListForProject returns the permissions granted on one project.
func (r *PermissionRepo) ListForProject(ctx context.Context, projectID int64) ([]Permission, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, u_id, p_id, access_level FROM permissions WHERE p_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Permission
	for rows.Next() {
		var p Permission
		if err := rows.Scan(&p.ID, &p.UserID, &p.ProjectID, &p.AccessLevel); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of permission rows.
func (r *PermissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM permissions`).Scan(&n)
	return n, err
}
