package models

import (
	"errors"
	"time"
)

var ErrInvalidTransition = errors.New("invalid lifecycle transition")

type LifecycleState int

const (
	StateActive LifecycleState = iota
	StateArchived
	StateDeleted
)

func (s LifecycleState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateArchived:
		return "archived"
	case StateDeleted:
		return "deleted"
	}
	return "unknown"
}

// Lifecycle holds the archive and soft-delete timestamps of a resource or folder.
// Deletion is orthogonal to archiving: a deleted item remembers whether it was
// archived and returns to that state on restore.
type Lifecycle struct {
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

func (l Lifecycle) State() LifecycleState {
	if l.DeletedAt != nil {
		return StateDeleted
	}
	if l.ArchivedAt != nil {
		return StateArchived
	}
	return StateActive
}

func (l Lifecycle) Archive(at time.Time, createdAt time.Time) (Lifecycle, error) {
	if l.State() != StateActive || at.Before(createdAt) {
		return l, ErrInvalidTransition
	}
	l.ArchivedAt = &at
	return l, nil
}

func (l Lifecycle) Unarchive() (Lifecycle, error) {
	if l.State() != StateArchived {
		return l, ErrInvalidTransition
	}
	l.ArchivedAt = nil
	return l, nil
}

func (l Lifecycle) Delete(at time.Time, createdAt time.Time) (Lifecycle, error) {
	if l.State() == StateDeleted || at.Before(createdAt) {
		return l, ErrInvalidTransition
	}
	l.DeletedAt = &at
	return l, nil
}

func (l Lifecycle) Restore() (Lifecycle, error) {
	if l.State() != StateDeleted {
		return l, ErrInvalidTransition
	}
	l.DeletedAt = nil
	return l, nil
}
