package resources

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"resource-hub/internal/database"
	"resource-hub/internal/folderrules"
	"resource-hub/internal/models"

	"github.com/sirupsen/logrus"
)

type resourceMovedPayload struct {
	ID           string  `json:"id"`
	FromFolderID *string `json:"from_folder_id"`
	ToFolderID   *string `json:"to_folder_id"`
}

type idPayload struct {
	ID string `json:"id"`
}

// checkResourceTarget verifies that r may be placed in folderID (nil = root).
func (s *Service) checkResourceTarget(ctx context.Context, q *database.Queries, userID int64, r models.Resource, folderID *string) error {
	if folderID == nil {
		return nil
	}
	folder, err := s.getLiveFolder(ctx, q, userID, *folderID)
	if err != nil {
		return err
	}
	if verdict := folderrules.CanAddResourceToFolder(r, *folder); !verdict.OK {
		return fmt.Errorf("%w: %s", ErrTypeMismatch, verdict.Reason)
	}
	return nil
}

func (s *Service) CreateLinkResource(ctx context.Context, userID int64, params CreateLinkParams) (*models.Resource, error) {
	if err := params.Validate(); err != nil {
		return nil, validationError(err)
	}

	rt := params.Type
	if rt == "" {
		rt = DetectLinkType(params.URL)
	}
	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = params.URL
	}
	url := strings.TrimSpace(params.URL)

	var created *models.Resource
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		candidate := models.Resource{Type: rt}
		if err := s.checkResourceTarget(ctx, q, userID, candidate, params.FolderID); err != nil {
			return err
		}

		id, err := s.generateUniqueID(ctx, q.ResourceExists)
		if err != nil {
			return err
		}

		created, err = q.CreateResource(ctx, database.CreateResourceParams{
			ID:          id,
			UserID:      userID,
			Type:        rt,
			Title:       title,
			Description: params.Description,
			URL:         &url,
			Metadata:    params.Metadata,
			FolderID:    params.FolderID,
		})
		if err != nil {
			return err
		}
		return emit("resource_created", created)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "resource_id": created.ID, "type": created.Type}).Info("resource created")
	return created, nil
}

// CreateFileResource stores data as the payload of a new document or image
// resource. The blob is written first and removed again when the row cannot
// be inserted.
func (s *Service) CreateFileResource(ctx context.Context, userID int64, params CreateFileParams, data io.Reader) (*models.Resource, error) {
	if err := params.Validate(); err != nil {
		return nil, validationError(err)
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = params.FileName
	}

	id, err := s.generateUniqueID(ctx, s.store.ResourceExists)
	if err != nil {
		return nil, err
	}
	if err := s.blobs.Save(id, data); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	var created *models.Resource
	err = s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		if err := s.checkResourceTarget(ctx, q, userID, models.Resource{Type: params.Type}, params.FolderID); err != nil {
			return err
		}

		storagePath := id
		fileName := params.FileName
		var err error
		created, err = q.CreateResource(ctx, database.CreateResourceParams{
			ID:          id,
			UserID:      userID,
			Type:        params.Type,
			Title:       title,
			Description: params.Description,
			StoragePath: &storagePath,
			FileName:    &fileName,
			Metadata:    params.Metadata,
			FolderID:    params.FolderID,
		})
		if err != nil {
			return err
		}
		return emit("resource_created", created)
	})
	if err != nil {
		s.removeBlobs(userID, []string{id})
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "resource_id": created.ID, "type": created.Type}).Info("file resource created")
	return created, nil
}

func (s *Service) GetResource(ctx context.Context, userID int64, id string) (*models.Resource, error) {
	return s.getResource(ctx, s.store.Queries, userID, id)
}

// OpenResourceFile returns the payload of a live file resource.
func (s *Service) OpenResourceFile(ctx context.Context, userID int64, id string) (*models.Resource, io.ReadCloser, error) {
	r, err := s.getResource(ctx, s.store.Queries, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if r.State() == models.StateDeleted || !r.Type.IsFile() || r.StoragePath == nil {
		return nil, nil, fmt.Errorf("%w: no file for resource %s", ErrNotFound, id)
	}
	rc, err := s.blobs.Get(*r.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return r, rc, nil
}

func (s *Service) ListResources(ctx context.Context, userID int64, params ListParams) ([]models.Resource, error) {
	return s.store.ListResources(ctx, database.ListResourcesParams{
		UserID:          userID,
		FolderID:        params.FolderID,
		IncludeArchived: params.IncludeArchived,
	})
}

// UpdateResource edits descriptive fields. The type of a resource cannot be changed.
func (s *Service) UpdateResource(ctx context.Context, userID int64, id string, params UpdateResourceParams) (*models.Resource, error) {
	if err := params.Validate(); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Resource
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		var err error
		updated, err = q.UpdateResource(ctx, database.UpdateResourceParams{
			ID:          id,
			UserID:      userID,
			Title:       params.Title,
			Description: params.Description,
			URL:         params.URL,
			Metadata:    params.Metadata,
		})
		if err != nil {
			return err
		}
		if updated == nil {
			return fmt.Errorf("%w: resource %s", ErrNotFound, id)
		}
		return emit("resource_updated", updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MoveResourceToFolder places the resource in folderID, or at the root when
// folderID is nil. A folder of another type is rejected before anything changes.
func (s *Service) MoveResourceToFolder(ctx context.Context, userID int64, resourceID string, folderID *string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		r, err := s.getResource(ctx, q, userID, resourceID)
		if err != nil {
			return err
		}
		if r.State() == models.StateDeleted {
			return fmt.Errorf("%w: resource %s", ErrNotFound, resourceID)
		}
		if err := s.checkResourceTarget(ctx, q, userID, *r, folderID); err != nil {
			return err
		}

		ok, err := q.SetResourceFolder(ctx, resourceID, userID, folderID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: resource %s", ErrNotFound, resourceID)
		}
		return emit("resource_moved", resourceMovedPayload{ID: resourceID, FromFolderID: r.FolderID, ToFolderID: folderID})
	})
}

// CopyResourceToFolder duplicates the resource into folderID under a new id.
// File payloads are duplicated too, so the copies are independent.
func (s *Service) CopyResourceToFolder(ctx context.Context, userID int64, resourceID string, folderID string) (*models.Resource, error) {
	var (
		copied  *models.Resource
		blobKey string
	)
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		src, err := s.getResource(ctx, q, userID, resourceID)
		if err != nil {
			return err
		}
		if src.State() == models.StateDeleted {
			return fmt.Errorf("%w: resource %s", ErrNotFound, resourceID)
		}
		if err := s.checkResourceTarget(ctx, q, userID, *src, &folderID); err != nil {
			return err
		}

		id, err := s.generateUniqueID(ctx, q.ResourceExists)
		if err != nil {
			return err
		}

		var storagePath *string
		if src.StoragePath != nil {
			if err := s.blobs.Copy(*src.StoragePath, id); err != nil {
				return fmt.Errorf("failed to copy file: %w", err)
			}
			blobKey = id
			storagePath = &blobKey
		}

		copied, err = q.CreateResource(ctx, database.CreateResourceParams{
			ID:          id,
			UserID:      userID,
			Type:        src.Type,
			Title:       src.Title,
			Description: src.Description,
			URL:         src.URL,
			StoragePath: storagePath,
			FileName:    src.FileName,
			Metadata:    src.Metadata,
			FolderID:    &folderID,
		})
		if err != nil {
			return err
		}
		return emit("resource_copied", map[string]interface{}{"source_id": src.ID, "resource": copied})
	})
	if err != nil {
		if blobKey != "" {
			s.removeBlobs(userID, []string{blobKey})
		}
		return nil, err
	}
	return copied, nil
}

func (s *Service) ArchiveResource(ctx context.Context, userID int64, id string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		r, err := s.getResource(ctx, q, userID, id)
		if err != nil {
			return err
		}
		next, err := r.Archive(time.Now(), r.CreatedAt)
		if err != nil {
			return transitionError("resource", id, r.State(), "archive")
		}
		if _, err := q.SetResourceArchivedAt(ctx, id, userID, next.ArchivedAt); err != nil {
			return err
		}
		return emit("resource_archived", idPayload{ID: id})
	})
}

func (s *Service) UnarchiveResource(ctx context.Context, userID int64, id string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		r, err := s.getResource(ctx, q, userID, id)
		if err != nil {
			return err
		}
		if _, err := r.Unarchive(); err != nil {
			return transitionError("resource", id, r.State(), "unarchive")
		}
		if _, err := q.SetResourceArchivedAt(ctx, id, userID, nil); err != nil {
			return err
		}
		return emit("resource_unarchived", idPayload{ID: id})
	})
}

// DeleteResource moves a single resource to the trash.
func (s *Service) DeleteResource(ctx context.Context, userID int64, id string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		r, err := s.getResource(ctx, q, userID, id)
		if err != nil {
			return err
		}
		next, err := r.Delete(time.Now(), r.CreatedAt)
		if err != nil {
			return transitionError("resource", id, r.State(), "delete")
		}
		if _, err := q.SetResourceDeletedAt(ctx, id, userID, next.DeletedAt); err != nil {
			return err
		}
		return emit("resource_deleted", idPayload{ID: id})
	})
}

// RestoreResource brings a resource back from the trash. If its folder is
// still in the trash the resource is restored to the root instead.
func (s *Service) RestoreResource(ctx context.Context, userID int64, id string) error {
	return s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		r, err := s.getResource(ctx, q, userID, id)
		if err != nil {
			return err
		}
		if _, err := r.Restore(); err != nil {
			return transitionError("resource", id, r.State(), "restore")
		}
		if _, err := q.SetResourceDeletedAt(ctx, id, userID, nil); err != nil {
			return err
		}
		if r.FolderID != nil {
			parent, err := q.GetFolderByID(ctx, *r.FolderID, userID)
			if err != nil {
				return err
			}
			if parent == nil || parent.State() == models.StateDeleted {
				if _, err := q.SetResourceFolder(ctx, id, userID, nil); err != nil {
					return err
				}
			}
		}
		return emit("resource_restored", idPayload{ID: id})
	})
}

// PurgeResource deletes a resource permanently, including its payload.
func (s *Service) PurgeResource(ctx context.Context, userID int64, id string) error {
	var freed []string
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		found, storagePath, err := q.DeleteResource(ctx, id, userID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: resource %s", ErrNotFound, id)
		}
		if storagePath != nil {
			freed = append(freed, *storagePath)
		}
		return emit("resource_purged", idPayload{ID: id})
	})
	if err != nil {
		return err
	}
	s.removeBlobs(userID, freed)
	return nil
}
