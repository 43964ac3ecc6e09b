package dragdrop

import (
	"context"

	"resource-hub/internal/models"
)

// ResourceStore is the persistence the controller drives. Every call may fail;
// a failure rolls the controller's lists back to their state before the drop.
type ResourceStore interface {
	CreateFolderFromResources(ctx context.Context, userID int64, pair [2]models.Resource, name string) (*models.Folder, error)
	MoveResourceToFolder(ctx context.Context, userID int64, resourceID string, folderID *string) error
	CopyResourceToFolder(ctx context.Context, userID int64, resourceID string, folderID string) (*models.Resource, error)
	MoveFolder(ctx context.Context, userID int64, folderID string, targetID *string) error

	ArchiveFolder(ctx context.Context, userID int64, folderID string) error
	UnarchiveFolder(ctx context.Context, userID int64, folderID string) error
	DeleteFolder(ctx context.Context, userID int64, folderID string) error
	RestoreFolder(ctx context.Context, userID int64, folderID string) error
	PurgeFolder(ctx context.Context, userID int64, folderID string) error
}

// Notifier receives the user-facing side effects of completed operations.
// Callbacks run without the controller lock held, so they may call back into it.
type Notifier interface {
	OnSuccess(message string)
	OnError(message string)
	OnRefresh()
}

// NotifierFuncs adapts plain functions to Notifier. Nil fields are skipped.
type NotifierFuncs struct {
	Success func(message string)
	Error   func(message string)
	Refresh func()
}

func (n NotifierFuncs) OnSuccess(message string) {
	if n.Success != nil {
		n.Success(message)
	}
}

func (n NotifierFuncs) OnError(message string) {
	if n.Error != nil {
		n.Error(message)
	}
}

func (n NotifierFuncs) OnRefresh() {
	if n.Refresh != nil {
		n.Refresh()
	}
}
