// Package projecturls provides the PostgreSQL-backed repository for project
// URL rows and the url-type vocabulary.
package projecturls

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
	"github.com/dmitrijs2005/portfolio-backend/internal/dbx"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// PostgresRepository implements URL storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetTypeIDByLabel resolves a url-type label to its id.
// Unknown labels yield common.ErrorNotFound.
func (r *PostgresRepository) GetTypeIDByLabel(ctx context.Context, label string) (int64, error) {
	query := `SELECT id FROM project_url_types WHERE type_label = $1`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, label).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// Insert adds one URL row for a project.
func (r *PostgresRepository) Insert(ctx context.Context, projectID, typeID int64, url string) error {
	query := `
		INSERT INTO project_urls (project_id, url_type_id, url)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, projectID, typeID, url); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteByProject removes every URL row of a project.
func (r *PostgresRepository) DeleteByProject(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_urls WHERE project_id = $1`
	if _, err := r.db.ExecContext(ctx, query, projectID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByProject returns a project's URLs with their type labels.
func (r *PostgresRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectURL, error) {
	query := `
		SELECT u.id, u.project_id, t.type_label, u.url
		FROM project_urls u
		JOIN project_url_types t ON t.id = u.url_type_id
		WHERE u.project_id = $1
		ORDER BY t.id
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ProjectURL
	for rows.Next() {
		u := &models.ProjectURL{}
		if err := rows.Scan(&u.ID, &u.ProjectID, &u.TypeLabel, &u.URL); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
