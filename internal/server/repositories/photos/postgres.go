// Package photos provides the PostgreSQL-backed repository for photo rows.
package photos

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolio-backend/internal/dbx"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// PostgresRepository implements photo storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert adds one photo row for a project.
func (r *PostgresRepository) Insert(ctx context.Context, projectID int64, photoURL string, displayOrder int) error {
	query := `
		INSERT INTO photos (project_id, photo_url, display_order)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, projectID, photoURL, displayOrder); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteByProject removes every photo row of a project.
func (r *PostgresRepository) DeleteByProject(ctx context.Context, projectID int64) error {
	query := `DELETE FROM photos WHERE project_id = $1`
	if _, err := r.db.ExecContext(ctx, query, projectID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByProject returns a project's photos ordered by display_order.
func (r *PostgresRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.Photo, error) {
	query := `
		SELECT id, project_id, photo_url, display_order
		FROM photos
		WHERE project_id = $1
		ORDER BY display_order
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Photo
	for rows.Next() {
		p := &models.Photo{}
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.PhotoURL, &p.DisplayOrder); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// KeysByProject returns only the storage keys of a project's photos, in
// display order. Used to build object-store deletion lists.
func (r *PostgresRepository) KeysByProject(ctx context.Context, projectID int64) ([]string, error) {
	query := `
		SELECT photo_url
		FROM photos
		WHERE project_id = $1
		ORDER BY display_order
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
