package resources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resource-hub/internal/database"
	"resource-hub/internal/dragdrop"
	"resource-hub/internal/folderrules"
	"resource-hub/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

type folderMovedPayload struct {
	ID           string  `json:"id"`
	FromParentID *string `json:"from_parent_id"`
	ToParentID   *string `json:"to_parent_id"`
}

func (s *Service) CreateFolder(ctx context.Context, userID int64, params CreateFolderParams) (*models.Folder, error) {
	if err := params.Validate(); err != nil {
		return nil, validationError(err)
	}

	var created *models.Folder
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		if params.ParentID != nil {
			parent, err := s.getLiveFolder(ctx, q, userID, *params.ParentID)
			if err != nil {
				return err
			}
			if parent.ResourceType != params.ResourceType {
				return fmt.Errorf("%w: cannot place a %s folder inside a %s folder", ErrTypeMismatch,
					folderrules.TypeLabel(params.ResourceType), folderrules.TypeLabel(parent.ResourceType))
			}
		}

		id, err := s.generateUniqueID(ctx, q.FolderExists)
		if err != nil {
			return err
		}

		created, err = q.CreateFolder(ctx, database.CreateFolderParams{
			ID:           id,
			UserID:       userID,
			Name:         strings.TrimSpace(params.Name),
			ParentID:     params.ParentID,
			ResourceType: params.ResourceType,
			Color:        params.Color,
			Icon:         params.Icon,
			Position:     params.Position,
		})
		if err != nil {
			return err
		}
		return emit("folder_created", created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CreateFolderFromResources groups two resources of the same type into a new
// folder created where the second (target) resource lived.
func (s *Service) CreateFolderFromResources(ctx context.Context, userID int64, pair [2]models.Resource, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = dragdrop.DefaultFolderName
	}

	var created *models.Folder
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		var current [2]*models.Resource
		for i, r := range pair {
			fresh, err := s.getResource(ctx, q, userID, r.ID)
			if err != nil {
				return err
			}
			if fresh.State() == models.StateDeleted {
				return fmt.Errorf("%w: resource %s", ErrNotFound, r.ID)
			}
			current[i] = fresh
		}
		a, b := current[0], current[1]
		if verdict := folderrules.CanMergeResources(*a, *b); !verdict.OK {
			return fmt.Errorf("%w: %s", ErrTypeMismatch, verdict.Reason)
		}

		id, err := s.generateUniqueID(ctx, q.FolderExists)
		if err != nil {
			return err
		}
		created, err = q.CreateFolder(ctx, database.CreateFolderParams{
			ID:           id,
			UserID:       userID,
			Name:         name,
			ParentID:     b.FolderID,
			ResourceType: b.Type,
		})
		if err != nil {
			return err
		}
		if err := emit("folder_created", created); err != nil {
			return err
		}

		for _, r := range current {
			if _, err := q.SetResourceFolder(ctx, r.ID, userID, &created.ID); err != nil {
				return err
			}
			if err := emit("resource_moved", resourceMovedPayload{ID: r.ID, FromFolderID: r.FolderID, ToFolderID: &created.ID}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "folder_id": created.ID}).Info("folder created from resources")
	return created, nil
}

func (s *Service) GetFolder(ctx context.Context, userID int64, id string) (*models.Folder, error) {
	return s.getFolder(ctx, s.store.Queries, userID, id)
}

func (s *Service) ListFolders(ctx context.Context, userID int64, params ListParams) ([]models.Folder, error) {
	return s.store.ListFolders(ctx, database.ListFoldersParams{
		UserID:          userID,
		ParentID:        params.FolderID,
		IncludeArchived: params.IncludeArchived,
	})
}

func (s *Service) UpdateFolder(ctx context.Context, userID int64, id string, params UpdateFolderParams) (*models.Folder, error) {
	if err := params.Validate(); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Folder
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		var name *string
		if params.Name != nil {
			trimmed := strings.TrimSpace(*params.Name)
			name = &trimmed
		}
		var err error
		updated, err = q.UpdateFolder(ctx, database.UpdateFolderParams{
			ID:       id,
			UserID:   userID,
			Name:     name,
			Color:    params.Color,
			Icon:     params.Icon,
			Position: params.Position,
		})
		if err != nil {
			return err
		}
		if updated == nil {
			return fmt.Errorf("%w: folder %s", ErrNotFound, id)
		}
		return emit("folder_updated", updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MoveFolder re-parents folderID under targetID, or to the root when targetID
// is nil. The target must hold the same resource type and must not lie inside
// the moved folder.
func (s *Service) MoveFolder(ctx context.Context, userID int64, folderID string, targetID *string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		g, err := s.getLiveFolder(ctx, q, userID, folderID)
		if err != nil {
			return err
		}

		if targetID != nil {
			if *targetID == folderID {
				return fmt.Errorf("%w: cannot place a folder inside itself", ErrCycle)
			}
			h, err := s.getLiveFolder(ctx, q, userID, *targetID)
			if err != nil {
				return err
			}
			if g.ResourceType != h.ResourceType {
				return fmt.Errorf("%w: cannot place a %s folder inside a %s folder", ErrTypeMismatch,
					folderrules.TypeLabel(g.ResourceType), folderrules.TypeLabel(h.ResourceType))
			}
			inside, err := q.IsDescendantOf(ctx, g.ID, h.ID)
			if err != nil {
				return err
			}
			if inside {
				return fmt.Errorf("%w: cannot place a folder inside its own sub-folder", ErrCycle)
			}
		}

		if _, err := q.SetFolderParent(ctx, folderID, userID, targetID); err != nil {
			return err
		}
		return emit("folder_moved", folderMovedPayload{ID: folderID, FromParentID: g.ParentID, ToParentID: targetID})
	})
}

// ArchiveFolder affects the folder row only; its contents keep their state.
func (s *Service) ArchiveFolder(ctx context.Context, userID int64, folderID string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		f, err := s.getFolder(ctx, q, userID, folderID)
		if err != nil {
			return err
		}
		next, err := f.Archive(time.Now(), f.CreatedAt)
		if err != nil {
			return transitionError("folder", folderID, f.State(), "archive")
		}
		if _, err := q.SetFolderArchivedAt(ctx, folderID, userID, next.ArchivedAt); err != nil {
			return err
		}
		return emit("folder_archived", idPayload{ID: folderID})
	})
}

func (s *Service) UnarchiveFolder(ctx context.Context, userID int64, folderID string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		f, err := s.getFolder(ctx, q, userID, folderID)
		if err != nil {
			return err
		}
		if _, err := f.Unarchive(); err != nil {
			return transitionError("folder", folderID, f.State(), "unarchive")
		}
		if _, err := q.SetFolderArchivedAt(ctx, folderID, userID, nil); err != nil {
			return err
		}
		return emit("folder_unarchived", idPayload{ID: folderID})
	})
}

// DeleteFolder moves the folder, its sub-folders and every resource inside
// them to the trash with one shared timestamp.
func (s *Service) DeleteFolder(ctx context.Context, userID int64, folderID string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		f, err := s.getFolder(ctx, q, userID, folderID)
		if err != nil {
			return err
		}
		next, err := f.Delete(time.Now(), f.CreatedAt)
		if err != nil {
			return transitionError("folder", folderID, f.State(), "delete")
		}
		affected, err := q.SoftDeleteFolderTree(ctx, folderID, userID, *next.DeletedAt)
		if err != nil {
			return err
		}
		return emit("folder_deleted", map[string]interface{}{"id": folderID, "affected": affected})
	})
}

// RestoreFolder mirrors DeleteFolder. A folder whose parent is still in the
// trash is restored to the root.
func (s *Service) RestoreFolder(ctx context.Context, userID int64, folderID string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		f, err := s.getFolder(ctx, q, userID, folderID)
		if err != nil {
			return err
		}
		if _, err := f.Restore(); err != nil {
			return transitionError("folder", folderID, f.State(), "restore")
		}
		affected, err := q.RestoreFolderTree(ctx, folderID, userID)
		if err != nil {
			return err
		}
		if f.ParentID != nil {
			parent, err := q.GetFolderByID(ctx, *f.ParentID, userID)
			if err != nil {
				return err
			}
			if parent == nil || parent.State() == models.StateDeleted {
				if _, err := q.SetFolderParent(ctx, folderID, userID, nil); err != nil {
					return err
				}
			}
		}
		return emit("folder_restored", map[string]interface{}{"id": folderID, "affected": affected})
	})
}

// PurgeFolder permanently deletes the folder tree: sub-folders first, then the
// resources of each folder, then the folder row. Payloads are removed after commit.
func (s *Service) PurgeFolder(ctx context.Context, userID int64, folderID string) error {
	var freed []string
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		if _, err := s.getFolder(ctx, q, userID, folderID); err != nil {
			return err
		}
		keys, err := purgeTree(ctx, q, userID, folderID, mapset.NewThreadUnsafeSet[string]())
		if err != nil {
			return err
		}
		freed = keys
		return emit("folder_purged", idPayload{ID: folderID})
	})
	if err != nil {
		return err
	}
	s.removeBlobs(userID, freed)
	return nil
}

func purgeTree(ctx context.Context, q *database.Queries, userID int64, folderID string, visited mapset.Set[string]) ([]string, error) {
	if !visited.Add(folderID) {
		return nil, fmt.Errorf("%w: folder %s appears twice in its own tree", ErrCycle, folderID)
	}

	children, err := q.ListChildFolderIDs(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	var freed []string
	for _, child := range children {
		keys, err := purgeTree(ctx, q, userID, child, visited)
		if err != nil {
			return nil, err
		}
		freed = append(freed, keys...)
	}

	keys, err := q.DeleteResourcesInFolder(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}
	freed = append(freed, keys...)

	if _, err := q.DeleteFolderRow(ctx, folderID, userID); err != nil {
		return nil, err
	}
	return freed, nil
}
