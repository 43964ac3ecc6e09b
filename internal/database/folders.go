package database

import (
	"context"
	"errors"
	"time"

	"resource-hub/internal/models"

	"github.com/jackc/pgx/v5"
)

const folderColumns = `id, user_id, name, parent_id, resource_type, color, icon, position,
	archived_at, deleted_at, created_at, updated_at`

func scanFolder(row scanner) (*models.Folder, error) {
	var f models.Folder
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.ParentID,
		&f.ResourceType,
		&f.Color,
		&f.Icon,
		&f.Position,
		&f.ArchivedAt,
		&f.DeletedAt,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func collectFolders(rows pgx.Rows) ([]models.Folder, error) {
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if folders == nil {
		return []models.Folder{}, nil
	}

	return folders, nil
}

func (q *Queries) FolderExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)"
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

type CreateFolderParams struct {
	ID           string
	UserID       int64
	Name         string
	ParentID     *string
	ResourceType models.ResourceType
	Color        string
	Icon         string
	Position     int
}

func (q *Queries) CreateFolder(ctx context.Context, arg CreateFolderParams) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, user_id, name, parent_id, resource_type, color, icon, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + folderColumns

	f, err := scanFolder(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.Name,
		arg.ParentID,
		arg.ResourceType,
		arg.Color,
		arg.Icon,
		arg.Position,
		time.Now(),
	))
	if err != nil {
		return nil, mapFolderFK(err)
	}
	return f, nil
}

// GetFolderByID returns the folder in any lifecycle state, or nil when the user
// owns no folder with this id.
func (q *Queries) GetFolderByID(ctx context.Context, id string, userID int64) (*models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE id = $1 AND user_id = $2`
	return scanFolder(q.db.QueryRow(ctx, query, id, userID))
}

type ListFoldersParams struct {
	UserID          int64
	ParentID        *string
	IncludeArchived bool
}

func (q *Queries) ListFolders(ctx context.Context, arg ListFoldersParams) ([]models.Folder, error) {
	query := `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE user_id = $1
			AND parent_id IS NOT DISTINCT FROM $2
			AND deleted_at IS NULL
			AND ($3 OR archived_at IS NULL)
		ORDER BY position, name, id
	`
	rows, err := q.db.Query(ctx, query, arg.UserID, arg.ParentID, arg.IncludeArchived)
	if err != nil {
		return nil, err
	}
	return collectFolders(rows)
}

type UpdateFolderParams struct {
	ID       string
	UserID   int64
	Name     *string
	Color    *string
	Icon     *string
	Position *int
}

func (q *Queries) UpdateFolder(ctx context.Context, arg UpdateFolderParams) (*models.Folder, error) {
	query := `
		UPDATE folders
		SET
			name = COALESCE($3, name),
			color = COALESCE($4, color),
			icon = COALESCE($5, icon),
			position = COALESCE($6, position),
			updated_at = $7
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + folderColumns

	return scanFolder(q.db.QueryRow(ctx, query,
		arg.ID, arg.UserID, arg.Name, arg.Color, arg.Icon, arg.Position, time.Now(),
	))
}

func (q *Queries) SetFolderParent(ctx context.Context, id string, userID int64, parentID *string) (bool, error) {
	query := `
		UPDATE folders
		SET parent_id = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`
	res, err := q.db.Exec(ctx, query, parentID, time.Now(), id, userID)
	if err != nil {
		return false, mapFolderFK(err)
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) SetFolderArchivedAt(ctx context.Context, id string, userID int64, at *time.Time) (bool, error) {
	query := `
		UPDATE folders
		SET archived_at = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL
	`
	res, err := q.db.Exec(ctx, query, at, time.Now(), id, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// IsDescendantOf reports whether candidateID lies in the subtree rooted at
// ancestorID. A folder counts as its own descendant.
func (q *Queries) IsDescendantOf(ctx context.Context, ancestorID string, candidateID string) (bool, error) {
	if ancestorID == candidateID {
		return true, nil
	}

	query := `
		WITH RECURSIVE folder_children AS (
			SELECT id FROM folders WHERE id = $1

			UNION

			SELECT f.id
			FROM folders f
			JOIN folder_children fc ON f.parent_id = fc.id
		)
		SELECT EXISTS (
			SELECT 1
			FROM folder_children
			WHERE id = $2
		);
	`
	var isDescendant bool
	err := q.db.QueryRow(ctx, query, ancestorID, candidateID).Scan(&isDescendant)
	return isDescendant, err
}

// SoftDeleteFolderTree stamps the folder, every sub-folder below it and every
// resource inside any of them with the same deleted_at.
func (q *Queries) SoftDeleteFolderTree(ctx context.Context, id string, userID int64, at time.Time) (int64, error) {
	folderQuery := `
		WITH RECURSIVE folder_tree AS (
			SELECT id FROM folders WHERE id = $1 AND user_id = $2

			UNION

			SELECT f.id
			FROM folders f
			JOIN folder_tree ft ON f.parent_id = ft.id
		)
		UPDATE folders
		SET deleted_at = $3, updated_at = $3
		WHERE id IN (SELECT id FROM folder_tree)
	`
	res, err := q.db.Exec(ctx, folderQuery, id, userID, at)
	if err != nil {
		return 0, err
	}
	if res.RowsAffected() == 0 {
		return 0, nil
	}

	resourceQuery := `
		WITH RECURSIVE folder_tree AS (
			SELECT id FROM folders WHERE id = $1 AND user_id = $2

			UNION

			SELECT f.id
			FROM folders f
			JOIN folder_tree ft ON f.parent_id = ft.id
		)
		UPDATE resources
		SET deleted_at = $3, updated_at = $3
		WHERE folder_id IN (SELECT id FROM folder_tree)
	`
	resourceRes, err := q.db.Exec(ctx, resourceQuery, id, userID, at)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected() + resourceRes.RowsAffected(), nil
}

// RestoreFolderTree clears deleted_at on the folder, its sub-folders and all
// resources inside them.
func (q *Queries) RestoreFolderTree(ctx context.Context, id string, userID int64) (int64, error) {
	folderQuery := `
		WITH RECURSIVE folder_tree AS (
			SELECT id FROM folders WHERE id = $1 AND user_id = $2

			UNION

			SELECT f.id
			FROM folders f
			JOIN folder_tree ft ON f.parent_id = ft.id
		)
		UPDATE folders
		SET deleted_at = NULL, updated_at = $3
		WHERE id IN (SELECT id FROM folder_tree)
	`
	now := time.Now()
	res, err := q.db.Exec(ctx, folderQuery, id, userID, now)
	if err != nil {
		return 0, err
	}
	if res.RowsAffected() == 0 {
		return 0, nil
	}

	resourceQuery := `
		WITH RECURSIVE folder_tree AS (
			SELECT id FROM folders WHERE id = $1 AND user_id = $2

			UNION

			SELECT f.id
			FROM folders f
			JOIN folder_tree ft ON f.parent_id = ft.id
		)
		UPDATE resources
		SET deleted_at = NULL, updated_at = $3
		WHERE folder_id IN (SELECT id FROM folder_tree)
	`
	resourceRes, err := q.db.Exec(ctx, resourceQuery, id, userID, now)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected() + resourceRes.RowsAffected(), nil
}

func (q *Queries) ListChildFolderIDs(ctx context.Context, userID int64, parentID string) ([]string, error) {
	query := `SELECT id FROM folders WHERE user_id = $1 AND parent_id = $2 ORDER BY id`
	rows, err := q.db.Query(ctx, query, userID, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// DeleteFolderRow removes only the folder row; children must already be gone.
func (q *Queries) DeleteFolderRow(ctx context.Context, id string, userID int64) (bool, error) {
	query := `DELETE FROM folders WHERE id = $1 AND user_id = $2`
	res, err := q.db.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) ListDeletedFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	query := `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC, id
	`
	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectFolders(rows)
}

// ListTrashRootFolderIDs returns deleted folders whose parent is not itself in
// the trash. Purging these recursively empties every deleted folder.
func (q *Queries) ListTrashRootFolderIDs(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT f.id
		FROM folders f
		LEFT JOIN folders p ON p.id = f.parent_id
		WHERE f.user_id = $1
			AND f.deleted_at IS NOT NULL
			AND (p.id IS NULL OR p.deleted_at IS NULL)
		ORDER BY f.id
	`
	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
