package dragdrop

import (
	"context"
	"time"

	"resource-hub/internal/models"

	"github.com/samber/lo"
)

type folderAction struct {
	name       string
	call       func(s ResourceStore, ctx context.Context, userID int64, folderID string) error
	successMsg string
	// update gives the folder as listed after the action. A nil update means
	// the folder leaves the current listing.
	update func(f models.Folder, now time.Time) models.Folder
}

var (
	actionArchive = folderAction{
		name:       "archive_folder",
		call:       ResourceStore.ArchiveFolder,
		successMsg: "Folder archived",
		update: func(f models.Folder, now time.Time) models.Folder {
			f.ArchivedAt = &now
			return f
		},
	}
	actionUnarchive = folderAction{
		name:       "unarchive_folder",
		call:       ResourceStore.UnarchiveFolder,
		successMsg: "Folder unarchived",
		update: func(f models.Folder, _ time.Time) models.Folder {
			f.ArchivedAt = nil
			return f
		},
	}
	actionDelete = folderAction{
		name:       "delete_folder",
		call:       ResourceStore.DeleteFolder,
		successMsg: "Folder moved to trash",
	}
	actionRestore = folderAction{
		name:       "restore_folder",
		call:       ResourceStore.RestoreFolder,
		successMsg: "Folder restored",
	}
	actionPurge = folderAction{
		name:       "purge_folder",
		call:       ResourceStore.PurgeFolder,
		successMsg: "Folder deleted permanently",
	}
)

// Archived folders stay listed with their archive timestamp set. Deleted,
// restored and purged folders leave the view they were acted on from: the
// folder view for delete, the trash view for restore, either for purge.

func (c *Controller) ArchiveFolder(ctx context.Context, folderID string) *Pending {
	return c.runFolderAction(ctx, folderID, actionArchive)
}

func (c *Controller) UnarchiveFolder(ctx context.Context, folderID string) *Pending {
	return c.runFolderAction(ctx, folderID, actionUnarchive)
}

func (c *Controller) DeleteFolder(ctx context.Context, folderID string) *Pending {
	return c.runFolderAction(ctx, folderID, actionDelete)
}

func (c *Controller) RestoreFolder(ctx context.Context, folderID string) *Pending {
	return c.runFolderAction(ctx, folderID, actionRestore)
}

func (c *Controller) PurgeFolder(ctx context.Context, folderID string) *Pending {
	return c.runFolderAction(ctx, folderID, actionPurge)
}

func (c *Controller) runFolderAction(ctx context.Context, folderID string, action folderAction) *Pending {
	c.mu.Lock()
	if _, ok := lo.Find(c.folders, func(f models.Folder) bool { return f.ID == folderID }); !ok {
		c.mu.Unlock()
		c.notify.OnError("Folder not found")
		return nil
	}

	return c.begin(ctx, mutation{
		action: action.name,
		apply: func() {
			if action.update != nil {
				now := c.opts.Now()
				c.folders = lo.Map(c.folders, func(f models.Folder, _ int) models.Folder {
					if f.ID != folderID {
						return f
					}
					return action.update(f, now)
				})
				return
			}
			c.folders = lo.Filter(c.folders, func(f models.Folder, _ int) bool { return f.ID != folderID })
			c.forgetFolder(folderID)
		},
		call: func(ctx context.Context) (any, error) {
			return nil, action.call(c.store, ctx, c.userID, folderID)
		},
		successMsg: action.successMsg,
		errorMsg:   msgOperationFailed,
	})
}

// forgetFolder drops a removed folder from the drag session: dragging it ends
// the session, hovering it clears the drop target.
func (c *Controller) forgetFolder(folderID string) {
	refersTo := func(e Entity) bool { return e.Kind() == KindFolder && e.ID() == folderID }
	switch {
	case refersTo(c.session.Dragged):
		c.session.reset()
	case refersTo(c.session.Hover):
		c.session.leave()
	}
}
