package photos

import (
	"context"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// Repository persists photo rows, which reference object-storage files by
// opaque key.
type Repository interface {
	Insert(ctx context.Context, projectID int64, photoURL string, displayOrder int) error
	DeleteByProject(ctx context.Context, projectID int64) error
	ListByProject(ctx context.Context, projectID int64) ([]*models.Photo, error)
	KeysByProject(ctx context.Context, projectID int64) ([]string, error)
}
