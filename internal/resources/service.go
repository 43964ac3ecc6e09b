// Package resources is the authoritative resource store: typed resources and
// folders persisted in Postgres, file payloads in blob storage, and a journal
// event for every change.
package resources

import (
	"context"
	"errors"
	"fmt"
	"io"

	"resource-hub/internal/database"
	"resource-hub/internal/dragdrop"
	"resource-hub/internal/models"

	"github.com/jaevor/go-nanoid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrCycle             = errors.New("folder cycle")
	ErrInvalidType       = errors.New("invalid resource type")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = models.ErrInvalidTransition
)

const idLength = 21

// BlobStore holds the payloads of file resources.
type BlobStore interface {
	Save(key string, data io.Reader) error
	Get(key string) (io.ReadCloser, error)
	Copy(srcKey, dstKey string) error
	Delete(key string) error
}

// EventPublisher pushes committed journal entries to live clients.
type EventPublisher interface {
	PublishEvent(userID int64, eventData []byte)
}

type Service struct {
	store  *database.Store
	blobs  BlobStore
	events EventPublisher
	log    *logrus.Entry
	newID  func() string
}

var _ dragdrop.ResourceStore = (*Service)(nil)

func NewService(store *database.Store, blobs BlobStore, events EventPublisher, log *logrus.Entry) (*Service, error) {
	generate, err := nanoid.Standard(idLength)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		store:  store,
		blobs:  blobs,
		events: events,
		log:    log.WithField("component", "resources"),
		newID:  generate,
	}, nil
}

func (s *Service) generateUniqueID(ctx context.Context, exists func(context.Context, string) (bool, error)) (string, error) {
	maxRetries := 10

	for i := 0; i < maxRetries; i++ {
		id := s.newID()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for id existence: %w", err)
		}
		if !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

type emitFunc func(eventType string, payload interface{}) error

// withTx runs fn in a transaction. Events emitted by fn are journaled in the
// same transaction and published only after it commits.
func (s *Service) withTx(ctx context.Context, userID int64, fn func(q *database.Queries, emit emitFunc) error) error {
	var pending [][]byte

	err := s.store.ExecTx(ctx, func(q *database.Queries) error {
		pending = pending[:0]
		emit := func(eventType string, payload interface{}) error {
			msg, err := q.LogEvent(ctx, userID, eventType, payload)
			if err != nil {
				return fmt.Errorf("failed to log %s event: %w", eventType, err)
			}
			pending = append(pending, msg)
			return nil
		}
		return fn(q, emit)
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		for _, msg := range pending {
			s.events.PublishEvent(userID, msg)
		}
	}
	return nil
}

// removeBlobs deletes payloads after their rows are gone. Failures only leave
// orphaned files behind, so they are logged and not returned.
func (s *Service) removeBlobs(userID int64, keys []string) {
	for _, key := range keys {
		if err := s.blobs.Delete(key); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "key": key}).
				Warn("failed to delete blob")
		}
	}
}

func (s *Service) getResource(ctx context.Context, q *database.Queries, userID int64, id string) (*models.Resource, error) {
	r, err := q.GetResourceByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: resource %s", ErrNotFound, id)
	}
	return r, nil
}

func (s *Service) getFolder(ctx context.Context, q *database.Queries, userID int64, id string) (*models.Folder, error) {
	f, err := q.GetFolderByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: folder %s", ErrNotFound, id)
	}
	return f, nil
}

// getLiveFolder is getFolder restricted to folders that are not in the trash.
func (s *Service) getLiveFolder(ctx context.Context, q *database.Queries, userID int64, id string) (*models.Folder, error) {
	f, err := s.getFolder(ctx, q, userID, id)
	if err != nil {
		return nil, err
	}
	if f.State() == models.StateDeleted {
		return nil, fmt.Errorf("%w: folder %s", ErrNotFound, id)
	}
	return f, nil
}

func transitionError(kind, id string, state models.LifecycleState, op string) error {
	return fmt.Errorf("%w: cannot %s %s %s while it is %s", ErrInvalidTransition, op, kind, id, state)
}
