// Package services contains server-side business logic: the transactional
// project write path and admin authentication.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
	"github.com/dmitrijs2005/portfolio-backend/internal/dbx"
	"github.com/dmitrijs2005/portfolio-backend/internal/logging"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/models"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/storage"
)

// DeployedURLLabel is the url-type entry that must be present whenever a
// project supplies URLs at all.
const DeployedURLLabel = "Deployed Url"

// MaxPhotosPerProject bounds the photo set of a single project.
const MaxPhotosPerProject = 4

// URLEntry is one (label, url) pair from a create/edit request. The label
// must belong to the closed url-type vocabulary.
type URLEntry struct {
	Label string
	URL   string
}

// PhotoEntry references a file already uploaded to object storage by the
// client, plus its position within the project.
type PhotoEntry struct {
	Key          string
	DisplayOrder int
}

// ProjectInput carries the full payload of a create or edit operation.
type ProjectInput struct {
	Date        time.Time
	Title       string
	Description string
	URLs        []URLEntry
	Photos      []PhotoEntry
}

// OrderUpdate assigns one project a new display position.
type OrderUpdate struct {
	ProjectID    int64
	DisplayOrder int
}

// ProjectService executes project mutations. Each write spans the projects,
// project_urls, and photos tables inside one database transaction, and keeps
// the object store consistent with the transaction outcome: photo files
// orphaned by a rollback are deleted best-effort, and files belonging to a
// committed delete are removed only after the commit.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ObjectStore
	logger      logging.Logger
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore, logger logging.Logger) *ProjectService {
	return &ProjectService{
		db:          db,
		repomanager: m,
		store:       store,
		logger:      logger.With("module", "project_service"),
	}
}

// validateURLs rejects URL sets lacking the deployed-url entry. Runs before
// any database row is written.
func validateURLs(urls []URLEntry) error {
	if len(urls) == 0 {
		return nil
	}
	for _, u := range urls {
		if u.Label == DeployedURLLabel {
			return nil
		}
	}
	return common.ErrMissingDeployedURL
}

// validatePhotos checks size bounds and display_order uniqueness within the
// supplied set.
func validatePhotos(photos []PhotoEntry) error {
	if len(photos) > MaxPhotosPerProject {
		return fmt.Errorf("%w: at most %d photos", common.ErrInvalidPhotoSet, MaxPhotosPerProject)
	}
	seen := make(map[int]struct{}, len(photos))
	for _, p := range photos {
		if p.DisplayOrder < 1 {
			return fmt.Errorf("%w: display order must be positive", common.ErrInvalidPhotoSet)
		}
		if _, dup := seen[p.DisplayOrder]; dup {
			return fmt.Errorf("%w: duplicate display order %d", common.ErrInvalidPhotoSet, p.DisplayOrder)
		}
		seen[p.DisplayOrder] = struct{}{}
	}
	return nil
}

// ValidateOrderUpdates checks a reorder payload before the writer runs:
// non-empty, well-formed ids, unique positive display orders.
func ValidateOrderUpdates(updates []OrderUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("%w: empty update list", common.ErrInvalidOrderSet)
	}
	seenOrder := make(map[int]struct{}, len(updates))
	seenID := make(map[int64]struct{}, len(updates))
	for _, u := range updates {
		if u.ProjectID < 1 {
			return fmt.Errorf("%w: invalid project id %d", common.ErrInvalidOrderSet, u.ProjectID)
		}
		if u.DisplayOrder < 1 {
			return fmt.Errorf("%w: display order must be positive", common.ErrInvalidOrderSet)
		}
		if _, dup := seenID[u.ProjectID]; dup {
			return fmt.Errorf("%w: duplicate project id %d", common.ErrInvalidOrderSet, u.ProjectID)
		}
		if _, dup := seenOrder[u.DisplayOrder]; dup {
			return fmt.Errorf("%w: duplicate display order %d", common.ErrInvalidOrderSet, u.DisplayOrder)
		}
		seenID[u.ProjectID] = struct{}{}
		seenOrder[u.DisplayOrder] = struct{}{}
	}
	return nil
}

// insertChildren writes the URL and photo rows for a project inside the
// current transaction.
func (s *ProjectService) insertChildren(ctx context.Context, tx dbx.DBTX, projectID int64, urls []URLEntry, photos []PhotoEntry) error {
	urlRepo := s.repomanager.ProjectURLs(tx)
	for _, u := range urls {
		typeID, err := urlRepo.GetTypeIDByLabel(ctx, u.Label)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: %q", common.ErrUnknownURLType, u.Label)
			}
			return err
		}
		if err := urlRepo.Insert(ctx, projectID, typeID, u.URL); err != nil {
			return err
		}
	}

	photoRepo := s.repomanager.Photos(tx)
	for _, p := range photos {
		if err := photoRepo.Insert(ctx, projectID, p.Key, p.DisplayOrder); err != nil {
			return err
		}
	}
	return nil
}

// compensate deletes the given keys from object storage after the
// transaction outcome is final. Failures are logged, never escalated: the
// primary operation's result has already been determined.
func (s *ProjectService) compensate(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	for _, res := range s.store.DeleteObjects(ctx, keys) {
		if res.Err != nil {
			s.logger.Error(ctx, "object cleanup failed", "key", res.Key, "error", res.Err.Error())
		}
	}
}

func photoKeys(photos []PhotoEntry) []string {
	keys := make([]string, 0, len(photos))
	for _, p := range photos {
		keys = append(keys, p.Key)
	}
	return keys
}

// Create inserts a new project at display position 1, shifting every other
// project down one, and writes its URL and photo rows in the same
// transaction. The supplied photo keys were uploaded by the client before
// this call; if the transaction rolls back, those files are orphaned and are
// deleted from object storage best-effort.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	if err := validateURLs(in.URLs); err != nil {
		return nil, err
	}
	if len(in.Photos) == 0 {
		return nil, fmt.Errorf("%w: at least one photo required", common.ErrInvalidPhotoSet)
	}
	if err := validatePhotos(in.Photos); err != nil {
		return nil, err
	}

	project := &models.Project{
		Date:         in.Date,
		Title:        in.Title,
		Description:  in.Description,
		DisplayOrder: 1,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		projRepo := s.repomanager.Projects(tx)

		if err := projRepo.ShiftDisplayOrders(ctx); err != nil {
			return err
		}
		id, err := projRepo.Create(ctx, project)
		if err != nil {
			return err
		}
		project.ID = id

		return s.insertChildren(ctx, tx, id, in.URLs, in.Photos)
	})
	if err != nil {
		s.compensate(ctx, photoKeys(in.Photos))
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return project, nil
}

// Edit updates the project row and, when URLs or photos are supplied,
// replaces the corresponding child rows wholesale. A rollback leaves the
// pre-edit rows referencing their photo files, so no object-store
// compensation happens here.
func (s *ProjectService) Edit(ctx context.Context, id int64, in ProjectInput) error {
	if err := validateURLs(in.URLs); err != nil {
		return err
	}
	if err := validatePhotos(in.Photos); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		projRepo := s.repomanager.Projects(tx)

		if err := projRepo.Update(ctx, &models.Project{
			ID:          id,
			Date:        in.Date,
			Title:       in.Title,
			Description: in.Description,
		}); err != nil {
			return err
		}

		if len(in.URLs) > 0 {
			if err := s.repomanager.ProjectURLs(tx).DeleteByProject(ctx, id); err != nil {
				return err
			}
		}
		if len(in.Photos) > 0 {
			if err := s.repomanager.Photos(tx).DeleteByProject(ctx, id); err != nil {
				return err
			}
		}
		return s.insertChildren(ctx, tx, id, in.URLs, in.Photos)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error editing project: %w", err)
	}
	return nil
}

// Delete removes a project and its child rows in one transaction, then —
// only after the commit — deletes the project's photo files from object
// storage. A post-commit deletion failure leaves dangling files, which is an
// accepted, logged inconsistency; the delete itself has already succeeded.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	var keys []string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		projRepo := s.repomanager.Projects(tx)

		if _, err := projRepo.GetByID(ctx, id); err != nil {
			return err
		}

		var err error
		keys, err = s.repomanager.Photos(tx).KeysByProject(ctx, id)
		if err != nil {
			return err
		}

		return projRepo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting project: %w", err)
	}

	s.compensate(ctx, keys)
	return nil
}

// Reorder applies a batch of display_order assignments atomically. Any
// single failed update rolls the whole batch back. The payload is assumed
// validated by the caller (ValidateOrderUpdates).
func (s *ProjectService) Reorder(ctx context.Context, updates []OrderUpdate) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		projRepo := s.repomanager.Projects(tx)
		for _, u := range updates {
			if err := projRepo.UpdateDisplayOrder(ctx, u.ProjectID, u.DisplayOrder); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error reordering projects: %w", err)
	}
	return nil
}

// Summaries returns the listing view: every project in display order with
// its first photo and deployed URL.
func (s *ProjectService) Summaries(ctx context.Context) ([]*models.ProjectSummary, error) {
	projRepo := s.repomanager.Projects(s.db)
	urlRepo := s.repomanager.ProjectURLs(s.db)
	photoRepo := s.repomanager.Photos(s.db)

	list, err := projRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.ProjectSummary, 0, len(list))
	for _, p := range list {
		summary := &models.ProjectSummary{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			DisplayOrder: p.DisplayOrder,
		}

		photos, err := photoRepo.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if len(photos) > 0 {
			summary.PhotoURL = photos[0].PhotoURL
		}

		urls, err := urlRepo.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if u.TypeLabel == DeployedURLLabel {
				summary.DeployedURL = u.URL
				break
			}
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Details returns the full view of one project or common.ErrorNotFound.
func (s *ProjectService) Details(ctx context.Context, id int64) (*models.ProjectDetails, error) {
	project, err := s.repomanager.Projects(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	urls, err := s.repomanager.ProjectURLs(s.db).ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := s.repomanager.Photos(s.db).ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.ProjectDetails{Project: *project, URLs: urls, Photos: photos}, nil
}
