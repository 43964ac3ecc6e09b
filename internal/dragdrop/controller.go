// Package dragdrop implements drag-and-drop organisation of resources and
// folders: a drag session state machine plus an optimistic mutation engine
// that applies the expected outcome locally, persists it asynchronously and
// restores the pre-drop lists when persistence fails.
package dragdrop

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"resource-hub/internal/metrics"
	"resource-hub/internal/models"

	"github.com/jaevor/go-nanoid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	DefaultFolderName = "New folder"
	PlaceholderPrefix = "temp-"

	msgFolderCreated      = "Folder created"
	msgFolderCreateFailed = "Failed to create folder"
	msgOperationFailed    = "Operation failed"
	msgBusy               = "Another operation is still in progress"
)

type Options struct {
	// SerializeDrops rejects a new mutation while a previous one is still
	// waiting for the store.
	SerializeDrops bool
	// FolderName names folders created by dropping a resource on a resource.
	FolderName string
	Logger     *logrus.Entry
	// NewID generates placeholder ids. Defaults to a nanoid with PlaceholderPrefix.
	NewID func() string
	Now   func() time.Time
}

// Controller owns one user's drag session and the resource and folder lists
// currently shown to that user. All methods are safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	userID    int64
	store     ResourceStore
	notify    Notifier
	opts      Options
	log       *logrus.Entry
	resources []models.Resource
	folders   []models.Folder
	session   Session
	inFlight  int
}

func NewController(userID int64, store ResourceStore, notify Notifier, opts Options) (*Controller, error) {
	if opts.FolderName == "" {
		opts.FolderName = DefaultFolderName
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		generate, err := nanoid.Standard(21)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
		}
		opts.NewID = func() string { return PlaceholderPrefix + generate() }
	}
	if notify == nil {
		notify = NotifierFuncs{}
	}
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Controller{
		userID: userID,
		store:  store,
		notify: notify,
		opts:   opts,
		log:    log.WithFields(logrus.Fields{"component": "dragdrop", "user_id": userID}),
	}, nil
}

// Replace installs an authoritative listing, e.g. after a refresh.
func (c *Controller) Replace(resources []models.Resource, folders []models.Folder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = slices.Clone(resources)
	c.folders = slices.Clone(folders)
}

// Snapshot returns copies of the current lists.
func (c *Controller) Snapshot() ([]models.Resource, []models.Folder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.resources), slices.Clone(c.folders)
}

func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Controller) LookupResource(id string) (models.Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.Find(c.resources, func(r models.Resource) bool { return r.ID == id })
}

func (c *Controller) LookupFolder(id string) (models.Folder, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.Find(c.folders, func(f models.Folder) bool { return f.ID == id })
}

func (c *Controller) DragStart(r models.Resource, pos Point, modifier bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.start(ResourceEntity(r), pos, modifier)
}

func (c *Controller) FolderDragStart(f models.Folder, pos Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.start(FolderEntity(f), pos, false)
}

func (c *Controller) Drag(pos Point, modifier bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.move(pos, modifier)
}

func (c *Controller) DragEnterResource(r models.Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.enter(ResourceEntity(r), c.folders)
}

func (c *Controller) DragEnterFolder(f models.Folder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.enter(FolderEntity(f), c.folders)
}

func (c *Controller) DragLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.leave()
}

// DragEnd abandons the session without side effects.
func (c *Controller) DragEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.reset()
}

// Drop consumes the session. When the hover target accepts the drop, the
// expected change is applied to the lists before Drop returns and the store
// call runs in the background; the returned Pending reports how it ended.
// Drop returns nil when nothing was sent to the store.
func (c *Controller) Drop(ctx context.Context) *Pending {
	c.mu.Lock()
	session := c.session
	c.session.reset()

	if !session.Active() || session.Hover.IsNone() || !session.CanDrop {
		c.mu.Unlock()
		return nil
	}

	m, ok := c.planDrop(session)
	if !ok {
		c.mu.Unlock()
		return nil
	}
	return c.begin(ctx, m)
}

// mutation describes one optimistic change. apply and reconcile run under the
// controller lock; call runs in its own goroutine.
type mutation struct {
	action     string
	apply      func()
	call       func(ctx context.Context) (any, error)
	reconcile  func(result any)
	successMsg string
	errorMsg   string
	refresh    bool
}

func (c *Controller) planDrop(s Session) (mutation, bool) {
	switch s.State() {
	case StateDraggingResource:
		dragged, _ := s.Dragged.Resource()
		if target, ok := s.Hover.Resource(); ok {
			return c.planMerge(dragged, target), true
		}
		if target, ok := s.Hover.Folder(); ok {
			if s.CopyMode {
				return c.planCopy(dragged, target), true
			}
			return c.planMoveResource(dragged, target), true
		}
	case StateDraggingFolder:
		dragged, _ := s.Dragged.Folder()
		if target, ok := s.Hover.Folder(); ok {
			return c.planMoveFolder(dragged, target), true
		}
	}
	return mutation{}, false
}

func (c *Controller) planMerge(a, b models.Resource) mutation {
	now := c.opts.Now()
	placeholder := models.Folder{
		ID:           c.opts.NewID(),
		UserID:       c.userID,
		Name:         c.opts.FolderName,
		ParentID:     b.FolderID,
		ResourceType: b.Type,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	name := c.opts.FolderName

	return mutation{
		action: "merge",
		apply: func() {
			c.resources = lo.Filter(c.resources, func(r models.Resource, _ int) bool {
				return r.ID != a.ID && r.ID != b.ID
			})
			c.folders = append([]models.Folder{placeholder}, c.folders...)
		},
		call: func(ctx context.Context) (any, error) {
			return c.store.CreateFolderFromResources(ctx, c.userID, [2]models.Resource{a, b}, name)
		},
		reconcile: func(result any) {
			created, ok := result.(*models.Folder)
			if !ok || created == nil {
				return
			}
			c.folders = lo.Map(c.folders, func(f models.Folder, _ int) models.Folder {
				if f.ID == placeholder.ID {
					return *created
				}
				return f
			})
		},
		successMsg: msgFolderCreated,
		errorMsg:   msgFolderCreateFailed,
	}
}

func (c *Controller) planMoveResource(r models.Resource, f models.Folder) mutation {
	folderID := f.ID
	return mutation{
		action: "move_resource",
		apply: func() {
			c.resources = lo.Filter(c.resources, func(x models.Resource, _ int) bool { return x.ID != r.ID })
		},
		call: func(ctx context.Context) (any, error) {
			return nil, c.store.MoveResourceToFolder(ctx, c.userID, r.ID, &folderID)
		},
		successMsg: fmt.Sprintf("Moved to %s", f.Name),
		errorMsg:   msgOperationFailed,
	}
}

func (c *Controller) planCopy(r models.Resource, f models.Folder) mutation {
	return mutation{
		action: "copy_resource",
		apply:  func() {},
		call: func(ctx context.Context) (any, error) {
			return c.store.CopyResourceToFolder(ctx, c.userID, r.ID, f.ID)
		},
		successMsg: fmt.Sprintf("Copied to %s", f.Name),
		errorMsg:   msgOperationFailed,
		refresh:    true,
	}
}

func (c *Controller) planMoveFolder(g, h models.Folder) mutation {
	targetID := h.ID
	return mutation{
		action: "move_folder",
		apply: func() {
			c.folders = lo.Filter(c.folders, func(f models.Folder, _ int) bool { return f.ID != g.ID })
		},
		call: func(ctx context.Context) (any, error) {
			return nil, c.store.MoveFolder(ctx, c.userID, g.ID, &targetID)
		},
		successMsg: fmt.Sprintf("Moved to %s", h.Name),
		errorMsg:   msgOperationFailed,
	}
}

// begin must be called with c.mu held; it releases the lock.
func (c *Controller) begin(ctx context.Context, m mutation) *Pending {
	if c.opts.SerializeDrops && c.inFlight > 0 {
		c.mu.Unlock()
		metrics.Drops.WithLabelValues(m.action, "busy").Inc()
		c.notify.OnError(msgBusy)
		return nil
	}

	prevResources := slices.Clone(c.resources)
	prevFolders := slices.Clone(c.folders)
	m.apply()
	c.inFlight++
	c.mu.Unlock()

	p := newPending()
	go func() {
		result, err := m.call(ctx)

		c.mu.Lock()
		c.inFlight--
		if err != nil {
			c.resources = prevResources
			c.folders = prevFolders
		} else if m.reconcile != nil {
			m.reconcile(result)
		}
		c.mu.Unlock()

		if err != nil {
			c.log.WithError(err).WithField("action", m.action).Error("drop failed, local state rolled back")
			metrics.Drops.WithLabelValues(m.action, "rolled_back").Inc()
			c.notify.OnError(m.errorMsg)
			p.finish(RolledBack, err)
			return
		}

		metrics.Drops.WithLabelValues(m.action, "committed").Inc()
		c.notify.OnSuccess(m.successMsg)
		if m.refresh {
			c.notify.OnRefresh()
		}
		p.finish(Committed, nil)
	}()

	return p
}

type Outcome int

const (
	Committed Outcome = iota + 1
	RolledBack
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled_back"
	}
	return "pending"
}

// Pending tracks a mutation whose store call has not necessarily finished.
type Pending struct {
	done    chan struct{}
	outcome Outcome
	err     error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) finish(o Outcome, err error) {
	p.outcome = o
	p.err = err
	close(p.done)
}

func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the store call finished and notifications were sent.
func (p *Pending) Wait() Outcome {
	<-p.done
	return p.outcome
}

// Err is the store error behind a rollback. Only meaningful after Done.
func (p *Pending) Err() error {
	<-p.done
	return p.err
}
