package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/mattn/go-sqlite3"

	"github.com/halstrom/app-registry/models"
)

// ErrDuplicateName is returned by Insert when the unique constraint on name
// rejects the row. The service maps it to its already-exists failure.
var ErrDuplicateName = errors.New("app name already taken")

// appColumns must match the Scan order used below.
const appColumns = `id, name, author, version`

// AppStore handles app database operations. Lookups return (nil, nil) when
// no row matches; not-found semantics belong to the service.
type AppStore struct {
	db *sql.DB
}

// NewAppStore creates a new app store
func NewAppStore(db *sql.DB) *AppStore {
	return &AppStore{db: db}
}

// GetByID gets an app by id
func (s *AppStore) GetByID(ctx context.Context, id int64) (*models.App, error) {
	return s.get(ctx, `SELECT `+appColumns+` FROM apps WHERE id = ?`, id)
}

// GetByName gets an app by its unique name
func (s *AppStore) GetByName(ctx context.Context, name string) (*models.App, error) {
	return s.get(ctx, `SELECT `+appColumns+` FROM apps WHERE name = ?`, name)
}

// GetByNameAndVersion gets an app matching both name and version
func (s *AppStore) GetByNameAndVersion(ctx context.Context, name, version string) (*models.App, error) {
	return s.get(ctx, `SELECT `+appColumns+` FROM apps WHERE name = ? AND version = ?`, name, version)
}

func (s *AppStore) get(ctx context.Context, query string, args ...any) (*models.App, error) {
	var app models.App
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&app.ID, &app.Name, &app.Author, &app.Version)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app: %w", err)
	}

	return &app, nil
}

// All returns a lazy scan over every stored app in id order. The sequence is
// single-use: it holds the underlying rows open until drained or abandoned.
func (s *AppStore) All(ctx context.Context) iter.Seq2[models.App, error] {
	return func(yield func(models.App, error) bool) {
		rows, err := s.db.QueryContext(ctx, `SELECT `+appColumns+` FROM apps ORDER BY id`)
		if err != nil {
			yield(models.App{}, fmt.Errorf("failed to list apps: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var app models.App
			if err := rows.Scan(&app.ID, &app.Name, &app.Author, &app.Version); err != nil {
				yield(models.App{}, fmt.Errorf("failed to scan app: %w", err))
				return
			}
			if !yield(app, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(models.App{}, fmt.Errorf("failed to list apps: %w", err))
		}
	}
}

// Insert persists a new app and returns it with the assigned id.
func (s *AppStore) Insert(ctx context.Context, app models.App) (*models.App, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO apps (name, author, version)
		VALUES (?, ?, ?)
	`, app.Name, app.Author, app.Version)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to insert app: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	app.ID = id

	return &app, nil
}

// Update persists all fields of an existing app row.
func (s *AppStore) Update(ctx context.Context, app models.App) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE apps SET name = ?, author = ?, version = ?
		WHERE id = ?
	`, app.Name, app.Author, app.Version, app.ID)

	if err != nil {
		return fmt.Errorf("failed to update app: %w", err)
	}

	return nil
}

// Delete removes an app row by id.
func (s *AppStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM apps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}

	return nil
}
