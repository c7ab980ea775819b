package projecturls

import (
	"context"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// Repository persists the (project, url-type) link rows and resolves labels
// from the closed url-type vocabulary.
type Repository interface {
	GetTypeIDByLabel(ctx context.Context, label string) (int64, error)
	Insert(ctx context.Context, projectID, typeID int64, url string) error
	DeleteByProject(ctx context.Context, projectID int64) error
	ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectURL, error)
}
