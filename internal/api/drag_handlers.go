package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"resource-hub/internal/dragdrop"
	"resource-hub/internal/metrics"
	"resource-hub/internal/models"
	"resource-hub/internal/resources"
	"resource-hub/internal/websocket"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	dragStart         = "drag_start"
	folderDragStart   = "folder_drag_start"
	dragMove          = "drag"
	dragEnterResource = "drag_enter_resource"
	dragEnterFolder   = "drag_enter_folder"
	dragLeave         = "drag_leave"
	dragDrop          = "drop"
	dragEnd           = "drag_end"
	openFolder        = "open_folder"
	openTrash         = "open_trash"
	archiveFolder     = "archive_folder"
	unarchiveFolder   = "unarchive_folder"
	deleteFolder      = "delete_folder"
	restoreFolder     = "restore_folder"
	purgeFolder       = "purge_folder"

	viewFolder = "folder"
	viewTrash  = "trash"
)

var (
	dragMessageTypes = []string{
		dragStart, folderDragStart, dragMove, dragEnterResource, dragEnterFolder,
		dragLeave, dragDrop, dragEnd, openFolder, openTrash,
		archiveFolder, unarchiveFolder, deleteFolder, restoreFolder, purgeFolder,
	}
	resourceMessages = []string{dragStart, dragEnterResource}
	folderMessages   = []string{folderDragStart, dragEnterFolder, archiveFolder, unarchiveFolder, deleteFolder, restoreFolder, purgeFolder}

	// Deleted items cannot be dragged or edited, live ones cannot be restored.
	folderViewOnly = []string{dragStart, folderDragStart, archiveFolder, unarchiveFolder, deleteFolder}
	trashViewOnly  = []string{restoreFolder}
)

// dragMessage is one inbound frame of the drag protocol.
type dragMessage struct {
	Type       string  `json:"type"`
	ResourceID string  `json:"resource_id"`
	FolderID   *string `json:"folder_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Modifier   bool    `json:"modifier"`
}

func (m dragMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Type, validation.Required, validation.In(lo.ToAnySlice(dragMessageTypes)...)),
		validation.Field(&m.ResourceID, validation.When(lo.Contains(resourceMessages, m.Type), validation.Required)),
		validation.Field(&m.FolderID, validation.When(lo.Contains(folderMessages, m.Type), validation.Required)),
	)
}

type sessionMessage struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id"`
	Session   dragdrop.Session `json:"session"`
}

type stateMessage struct {
	Type      string            `json:"type"`
	View      string            `json:"view"`
	FolderID  *string           `json:"folder_id"`
	Resources []models.Resource `json:"resources"`
	Folders   []models.Folder   `json:"folders"`
}

type noticeMessage struct {
	Type    string `json:"type"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// dragConn binds one websocket connection to its own drag controller. The
// controller shows either the contents of a single folder, the root by
// default, archived items included, or the trash.
type dragConn struct {
	id     string
	userID int64
	svc    *resources.Service
	client *websocket.Client
	ctrl   *dragdrop.Controller
	ctx    context.Context
	log    *logrus.Entry

	mu       sync.Mutex
	view     string
	folderID *string
}

func (d *dragConn) currentView() (string, *string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view, d.folderID
}

func (d *dragConn) open(view string, folderID *string) {
	d.mu.Lock()
	d.view, d.folderID = view, folderID
	d.mu.Unlock()
}

func (d *dragConn) send(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		d.log.WithError(err).Error("failed to encode drag message")
		return
	}
	if !d.client.Send(data) {
		d.log.Warn("drag client is gone or too slow, dropping message")
	}
}

func (d *dragConn) sendSession() {
	d.send(sessionMessage{Type: "session", SessionID: d.id, Session: d.ctrl.Session()})
}

func (d *dragConn) sendState() {
	res, folders := d.ctrl.Snapshot()
	view, folderID := d.currentView()
	d.send(stateMessage{
		Type:      "state",
		View:      view,
		FolderID:  folderID,
		Resources: lo.Ternary(res == nil, []models.Resource{}, res),
		Folders:   lo.Ternary(folders == nil, []models.Folder{}, folders),
	})
}

func (d *dragConn) notice(level string) func(string) {
	return func(message string) {
		d.send(noticeMessage{Type: "notice", Level: level, Message: message})
	}
}

// reload replaces the controller lists with the stored contents of the open view.
func (d *dragConn) reload() error {
	view, folderID := d.currentView()
	if view == viewTrash {
		trash, err := d.svc.ListTrash(d.ctx, d.userID)
		if err != nil {
			return err
		}
		d.ctrl.Replace(trash.Resources, trash.Folders)
		return nil
	}

	params := resources.ListParams{FolderID: folderID, IncludeArchived: true}
	res, err := d.svc.ListResources(d.ctx, d.userID, params)
	if err != nil {
		return err
	}
	folders, err := d.svc.ListFolders(d.ctx, d.userID, params)
	if err != nil {
		return err
	}
	d.ctrl.Replace(res, folders)
	return nil
}

func (d *dragConn) refresh() {
	if err := d.reload(); err != nil {
		if d.ctx.Err() == nil {
			d.log.WithError(err).Error("failed to reload listing")
			d.notice("error")("Failed to load resources")
		}
		return
	}
	d.sendState()
}

// track pushes the optimistic state now and the settled state once the
// store call has finished. The trash is reloaded instead, since restoring or
// purging a folder takes its deleted contents along.
func (d *dragConn) track(p *dragdrop.Pending) {
	if p == nil {
		return
	}
	d.sendState()
	go func() {
		select {
		case <-p.Done():
			if view, _ := d.currentView(); view == viewTrash {
				d.refresh()
				return
			}
			d.sendState()
		case <-d.ctx.Done():
		}
	}()
}

func (d *dragConn) handle(data []byte) {
	defer d.sendSession()

	var msg dragMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		d.notice("error")("Invalid message")
		return
	}
	if err := msg.Validate(); err != nil {
		d.notice("error")(err.Error())
		return
	}
	switch view, _ := d.currentView(); {
	case view == viewTrash && lo.Contains(folderViewOnly, msg.Type):
		d.notice("error")("Not available in the trash")
		return
	case view != viewTrash && lo.Contains(trashViewOnly, msg.Type):
		d.notice("error")("Only available in the trash")
		return
	}

	pos := dragdrop.Point{X: msg.X, Y: msg.Y}
	switch msg.Type {
	case dragStart:
		if r, ok := d.ctrl.LookupResource(msg.ResourceID); ok {
			d.ctrl.DragStart(r, pos, msg.Modifier)
		} else {
			d.notice("error")("Resource not found")
		}
	case folderDragStart:
		if f, ok := d.ctrl.LookupFolder(*msg.FolderID); ok {
			d.ctrl.FolderDragStart(f, pos)
		} else {
			d.notice("error")("Folder not found")
		}
	case dragMove:
		d.ctrl.Drag(pos, msg.Modifier)
	case dragEnterResource:
		if r, ok := d.ctrl.LookupResource(msg.ResourceID); ok {
			d.ctrl.DragEnterResource(r)
		}
	case dragEnterFolder:
		if f, ok := d.ctrl.LookupFolder(*msg.FolderID); ok {
			d.ctrl.DragEnterFolder(f)
		}
	case dragLeave:
		d.ctrl.DragLeave()
	case dragEnd:
		d.ctrl.DragEnd()
	case dragDrop:
		d.track(d.ctrl.Drop(d.ctx))
	case openFolder:
		d.ctrl.DragEnd()
		d.open(viewFolder, msg.FolderID)
		d.refresh()
	case openTrash:
		d.ctrl.DragEnd()
		d.open(viewTrash, nil)
		d.refresh()
	case archiveFolder:
		d.track(d.ctrl.ArchiveFolder(d.ctx, *msg.FolderID))
	case unarchiveFolder:
		d.track(d.ctrl.UnarchiveFolder(d.ctx, *msg.FolderID))
	case deleteFolder:
		d.track(d.ctrl.DeleteFolder(d.ctx, *msg.FolderID))
	case restoreFolder:
		d.track(d.ctrl.RestoreFolder(d.ctx, *msg.FolderID))
	case purgeFolder:
		d.track(d.ctrl.PurgeFolder(d.ctx, *msg.FolderID))
	}
}

// ServeDragWsHandler runs a drag-and-drop session over a websocket. Every
// connection gets its own controller; see dragMessage for the inbound frames.
func (s *Server) ServeDragWsHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticateWs(w, r)
	if !ok {
		return
	}

	var folderID *string
	if id := r.URL.Query().Get("folder_id"); id != "" {
		folderID = &id
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &dragConn{
		id:       uuid.NewString(),
		userID:   claims.UserID,
		svc:      s.svc,
		client:   websocket.NewClient(nil, conn, claims.UserID),
		ctx:      ctx,
		view:     viewFolder,
		folderID: folderID,
	}
	d.log = s.log.WithFields(logrus.Fields{"user_id": claims.UserID, "session_id": d.id})

	ctrl, err := dragdrop.NewController(claims.UserID, s.svc, dragdrop.NotifierFuncs{
		Success: d.notice("success"),
		Error:   d.notice("error"),
		Refresh: d.refresh,
	}, dragdrop.Options{
		SerializeDrops: s.config.Drag.SerializeDrops,
		FolderName:     s.config.Drag.FolderName,
		Logger:         d.log,
	})
	if err != nil {
		d.log.WithError(err).Error("failed to start drag controller")
		cancel()
		conn.Close()
		return
	}
	d.ctrl = ctrl
	d.client.OnMessage = d.handle

	go d.client.WritePump()

	if err := d.reload(); err != nil {
		d.log.WithError(err).Error("failed to load initial listing")
		d.notice("error")("Failed to load resources")
	}
	d.sendSession()
	d.sendState()

	metrics.DragSessions.Inc()
	d.log.Info("drag session opened")

	go func() {
		defer metrics.DragSessions.Dec()
		defer cancel()
		d.client.ReadPump()
		d.log.Info("drag session closed")
	}()
}
