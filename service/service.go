package service

import (
	"context"
	"errors"
	"iter"

	"github.com/halstrom/app-registry/models"
	"github.com/halstrom/app-registry/store"
)

// AppService orchestrates App lifecycle operations against the store. It is
// stateless: existence is authoritative in the store, never cached here, and
// no lock guards the name-uniqueness invariant across concurrent saves.
type AppService struct {
	store *store.AppStore
}

// NewAppService creates a new app service
func NewAppService(st *store.AppStore) *AppService {
	return &AppService{store: st}
}

// Save persists a new app derived from dto. A dto whose name is already
// stored fails with AlreadyExistsError and writes nothing. The existence
// check and the insert are two store calls; the unique constraint on name is
// the real guard when concurrent saves pass the check together, and its
// violation surfaces as the same AlreadyExistsError.
func (s *AppService) Save(ctx context.Context, dto models.AppDTO) (*models.App, error) {
	existing, err := s.store.GetByName(ctx, *dto.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &AlreadyExistsError{Name: *dto.Name}
	}

	app, err := s.store.Insert(ctx, models.NewApp(dto))
	if errors.Is(err, store.ErrDuplicateName) {
		return nil, &AlreadyExistsError{Name: *dto.Name}
	}
	if err != nil {
		return nil, err
	}

	return app, nil
}

// FindByID returns the app with the given id or NotFoundError.
func (s *AppService) FindByID(ctx context.Context, id int64) (*models.App, error) {
	app, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &NotFoundError{ID: id}
	}

	return app, nil
}

// FindAll returns a lazy, single-use sequence of all stored apps. An empty
// store yields an empty sequence, not an error.
func (s *AppService) FindAll(ctx context.Context) iter.Seq2[models.App, error] {
	return s.store.All(ctx)
}

// FindByNameAndVersion returns the matching app, or (nil, nil) when there is
// none. Unlike FindByID this is not a failure; the filtered-list dispatch
// path turns the absent result into an empty 200.
func (s *AppService) FindByNameAndVersion(ctx context.Context, name, version string) (*models.App, error) {
	return s.store.GetByNameAndVersion(ctx, name, version)
}

// UpdateByID merges the non-nil fields of dto onto the stored app and
// persists the result. The id is never touched. Fails with NotFoundError
// when no app has the given id.
func (s *AppService) UpdateByID(ctx context.Context, id int64, dto models.AppDTO) (*models.App, error) {
	app, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	models.MergeApp(dto, app)

	if err := s.store.Update(ctx, *app); err != nil {
		return nil, err
	}

	return app, nil
}

// DeleteByID confirms existence, then deletes. Deleting an absent id fails
// with NotFoundError rather than silently succeeding.
func (s *AppService) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}
