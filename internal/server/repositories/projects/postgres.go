// Package projects provides the PostgreSQL-backed repository for project rows.
package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
	"github.com/dmitrijs2005/portfolio-backend/internal/dbx"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// PostgresRepository implements project storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a project and returns its id.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (int64, error) {
	query := `
		INSERT INTO projects (project_date, title, description, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, query,
		p.Date, p.Title, p.Description, p.DisplayOrder).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// Update rewrites the mutable fields of a project by id.
// Returns common.ErrorNotFound when no row was affected.
func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects
		SET project_date = $2, title = $3, description = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, p.ID, p.Date, p.Title, p.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes a project row. Child rows cascade at the schema level.
// Returns common.ErrorNotFound when no row was affected.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// GetByID returns one project or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, project_date, title, description, display_order
		FROM projects
		WHERE id = $1
	`
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Date, &p.Title, &p.Description, &p.DisplayOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// List returns all projects ordered by display_order ascending.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, project_date, title, description, display_order
		FROM projects
		ORDER BY display_order
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.Date, &p.Title, &p.Description, &p.DisplayOrder); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ShiftDisplayOrders pushes every project one position down, freeing
// position 1 for a new insert.
func (r *PostgresRepository) ShiftDisplayOrders(ctx context.Context) error {
	query := `UPDATE projects SET display_order = display_order + 1`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateDisplayOrder sets one project's position.
// Returns common.ErrorNotFound when no row was affected.
func (r *PostgresRepository) UpdateDisplayOrder(ctx context.Context, id int64, displayOrder int) error {
	query := `UPDATE projects SET display_order = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, displayOrder)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
