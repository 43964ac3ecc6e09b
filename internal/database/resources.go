package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resource-hub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrFolderNotFound = errors.New("target folder does not exist")

const resourceColumns = `id, user_id, type, title, description, url, storage_path, file_name,
	metadata, folder_id, archived_at, deleted_at, created_at, updated_at`

func scanResource(row scanner) (*models.Resource, error) {
	var r models.Resource
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Type,
		&r.Title,
		&r.Description,
		&r.URL,
		&r.StoragePath,
		&r.FileName,
		&r.Metadata,
		&r.FolderID,
		&r.ArchivedAt,
		&r.DeletedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func collectResources(rows pgx.Rows) ([]models.Resource, error) {
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if resources == nil {
		return []models.Resource{}, nil
	}

	return resources, nil
}

func mapFolderFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrFolderNotFound
	}
	return err
}

func (q *Queries) ResourceExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM resources WHERE id = $1)"
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

type CreateResourceParams struct {
	ID          string
	UserID      int64
	Type        models.ResourceType
	Title       string
	Description *string
	URL         *string
	StoragePath *string
	FileName    *string
	Metadata    json.RawMessage
	FolderID    *string
}

func (q *Queries) CreateResource(ctx context.Context, arg CreateResourceParams) (*models.Resource, error) {
	query := `
		INSERT INTO resources (id, user_id, type, title, description, url, storage_path, file_name, metadata, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING ` + resourceColumns

	metadata := arg.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}

	r, err := scanResource(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.Type,
		arg.Title,
		arg.Description,
		arg.URL,
		arg.StoragePath,
		arg.FileName,
		[]byte(metadata),
		arg.FolderID,
		time.Now(),
	))
	if err != nil {
		return nil, mapFolderFK(err)
	}
	return r, nil
}

// GetResourceByID returns the resource in any lifecycle state, or nil when the
// user owns no resource with this id.
func (q *Queries) GetResourceByID(ctx context.Context, id string, userID int64) (*models.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1 AND user_id = $2`
	return scanResource(q.db.QueryRow(ctx, query, id, userID))
}

type ListResourcesParams struct {
	UserID          int64
	FolderID        *string
	IncludeArchived bool
}

// ListResources lists the live resources directly inside a folder, or at the
// root when FolderID is nil.
func (q *Queries) ListResources(ctx context.Context, arg ListResourcesParams) ([]models.Resource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM resources
		WHERE user_id = $1
			AND folder_id IS NOT DISTINCT FROM $2
			AND deleted_at IS NULL
			AND ($3 OR archived_at IS NULL)
		ORDER BY created_at DESC, id
	`
	rows, err := q.db.Query(ctx, query, arg.UserID, arg.FolderID, arg.IncludeArchived)
	if err != nil {
		return nil, err
	}
	return collectResources(rows)
}

type UpdateResourceParams struct {
	ID          string
	UserID      int64
	Title       *string
	Description *string
	URL         *string
	Metadata    json.RawMessage
}

func (q *Queries) UpdateResource(ctx context.Context, arg UpdateResourceParams) (*models.Resource, error) {
	query := `
		UPDATE resources
		SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			url = COALESCE($5, url),
			metadata = COALESCE($6::jsonb, metadata),
			updated_at = $7
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + resourceColumns

	var metadata []byte
	if len(arg.Metadata) > 0 {
		metadata = arg.Metadata
	}

	return scanResource(q.db.QueryRow(ctx, query,
		arg.ID, arg.UserID, arg.Title, arg.Description, arg.URL, metadata, time.Now(),
	))
}

func (q *Queries) SetResourceFolder(ctx context.Context, id string, userID int64, folderID *string) (bool, error) {
	query := `
		UPDATE resources
		SET folder_id = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	res, err := q.db.Exec(ctx, query, folderID, time.Now(), id, userID)
	if err != nil {
		return false, mapFolderFK(err)
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) SetResourceArchivedAt(ctx context.Context, id string, userID int64, at *time.Time) (bool, error) {
	query := `
		UPDATE resources
		SET archived_at = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	res, err := q.db.Exec(ctx, query, at, time.Now(), id, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// SetResourceDeletedAt soft-deletes (non-nil at) or restores (nil at) a single resource.
func (q *Queries) SetResourceDeletedAt(ctx context.Context, id string, userID int64, at *time.Time) (bool, error) {
	query := `
		UPDATE resources
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`
	res, err := q.db.Exec(ctx, query, at, time.Now(), id, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// DeleteResource removes the row for good and returns its storage path, if any.
func (q *Queries) DeleteResource(ctx context.Context, id string, userID int64) (bool, *string, error) {
	query := `DELETE FROM resources WHERE id = $1 AND user_id = $2 RETURNING storage_path`
	var storagePath *string
	err := q.db.QueryRow(ctx, query, id, userID).Scan(&storagePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, storagePath, nil
}

// DeleteResourcesInFolder removes every resource directly inside folderID and
// returns the storage paths that were freed.
func (q *Queries) DeleteResourcesInFolder(ctx context.Context, userID int64, folderID string) ([]string, error) {
	query := `
		DELETE FROM resources
		WHERE user_id = $1 AND folder_id = $2
		RETURNING storage_path
	`
	return q.collectStoragePaths(ctx, query, userID, folderID)
}

// PurgeDeletedResources removes every soft-deleted resource of the user.
func (q *Queries) PurgeDeletedResources(ctx context.Context, userID int64) ([]string, error) {
	query := `
		DELETE FROM resources
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		RETURNING storage_path
	`
	return q.collectStoragePaths(ctx, query, userID)
}

func (q *Queries) collectStoragePaths(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path *string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		if path != nil {
			paths = append(paths, *path)
		}
	}

	return paths, rows.Err()
}

func (q *Queries) ListDeletedResources(ctx context.Context, userID int64) ([]models.Resource, error) {
	query := `
		SELECT ` + resourceColumns + `
		FROM resources
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC, id
	`
	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectResources(rows)
}
