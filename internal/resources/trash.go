package resources

import (
	"context"

	"resource-hub/internal/database"
	"resource-hub/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

type Trash struct {
	Resources []models.Resource `json:"resources"`
	Folders   []models.Folder   `json:"folders"`
}

// ListTrash returns every soft-deleted resource and folder of the user.
func (s *Service) ListTrash(ctx context.Context, userID int64) (*Trash, error) {
	resources, err := s.store.ListDeletedResources(ctx, userID)
	if err != nil {
		return nil, err
	}
	folders, err := s.store.ListDeletedFolders(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Trash{Resources: resources, Folders: folders}, nil
}

// PurgeTrash permanently deletes everything in the trash. Deleted folders are
// purged as whole trees, then any remaining deleted resources.
func (s *Service) PurgeTrash(ctx context.Context, userID int64) error {
	var freed []string
	err := s.withTx(ctx, userID, func(q *database.Queries, emit emitFunc) error {
		roots, err := q.ListTrashRootFolderIDs(ctx, userID)
		if err != nil {
			return err
		}
		visited := mapset.NewThreadUnsafeSet[string]()
		for _, id := range roots {
			keys, err := purgeTree(ctx, q, userID, id, visited)
			if err != nil {
				return err
			}
			freed = append(freed, keys...)
		}

		keys, err := q.PurgeDeletedResources(ctx, userID)
		if err != nil {
			return err
		}
		freed = append(freed, keys...)

		return emit("trash_purged", map[string]interface{}{"folders": visited.Cardinality()})
	})
	if err != nil {
		return err
	}

	s.removeBlobs(userID, freed)
	s.log.WithFields(logrus.Fields{"user_id": userID, "blobs": len(freed)}).Info("trash purged")
	return nil
}
