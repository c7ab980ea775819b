// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/portfolio-backend/internal/dbx"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/migrations"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/photos"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/projects"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/projecturls"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Projects returns a projects.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewPostgresRepository(db)
}

// ProjectURLs returns a projecturls.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) ProjectURLs(db dbx.DBTX) projecturls.Repository {
	return projecturls.NewPostgresRepository(db)
}

// Photos returns a photos.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Photos(db dbx.DBTX) photos.Repository {
	return photos.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
