package projects

import (
	"context"

	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
)

// Repository persists project rows. Implementations are bound to a dbx.DBTX,
// so the same code runs against a plain connection or inside a transaction.
type Repository interface {
	Create(ctx context.Context, p *models.Project) (int64, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	ShiftDisplayOrders(ctx context.Context) error
	UpdateDisplayOrder(ctx context.Context, id int64, displayOrder int) error
}
