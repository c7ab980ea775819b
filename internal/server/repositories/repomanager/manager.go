package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/portfolio-backend/internal/dbx"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/photos"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/projects"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/projecturls"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against a plain connection or a transaction
// handle.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	ProjectURLs(db dbx.DBTX) projecturls.Repository
	Photos(db dbx.DBTX) photos.Repository
}
