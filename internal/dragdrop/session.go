package dragdrop

import (
	"resource-hub/internal/folderrules"
	"resource-hub/internal/models"
)

type State int

const (
	StateIdle State = iota
	StateDraggingResource
	StateDraggingFolder
)

func (s State) String() string {
	switch s {
	case StateDraggingResource:
		return "dragging_resource"
	case StateDraggingFolder:
		return "dragging_folder"
	}
	return "idle"
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) zero() bool { return p.X == 0 && p.Y == 0 }

// Session is the in-progress drag. The zero value is the idle session.
type Session struct {
	Dragged  Entity `json:"dragged"`
	Hover    Entity `json:"hover"`
	Position Point  `json:"position"`
	CanDrop  bool   `json:"can_drop"`
	Reason   string `json:"reason,omitempty"`
	CopyMode bool   `json:"copy_mode"`
}

func (s Session) State() State {
	switch s.Dragged.Kind() {
	case KindResource:
		return StateDraggingResource
	case KindFolder:
		return StateDraggingFolder
	}
	return StateIdle
}

func (s Session) Active() bool { return !s.Dragged.IsNone() }

// HoverKind tells what the pointer is over: nothing, a resource or a folder.
func (s Session) HoverKind() EntityKind { return s.Hover.Kind() }

func (s *Session) start(dragged Entity, pos Point, copyMode bool) {
	*s = Session{Dragged: dragged, Position: pos, CopyMode: copyMode}
}

func (s *Session) move(pos Point, modifier bool) {
	if !s.Active() || pos.zero() {
		return
	}
	s.Position = pos
	if s.State() == StateDraggingResource {
		s.CopyMode = modifier
	}
}

// enter makes target the hover target and decides synchronously whether a drop
// there would be accepted. Entering the dragged entity itself changes nothing.
func (s *Session) enter(target Entity, known []models.Folder) {
	if !s.Active() || target.IsNone() || s.Dragged.same(target) {
		return
	}

	var verdict folderrules.Verdict
	switch s.State() {
	case StateDraggingResource:
		dragged, _ := s.Dragged.Resource()
		if r, ok := target.Resource(); ok {
			verdict = folderrules.CanMergeResources(dragged, r)
		} else if f, ok := target.Folder(); ok {
			verdict = folderrules.CanAddResourceToFolder(dragged, f)
		}
	case StateDraggingFolder:
		dragged, _ := s.Dragged.Folder()
		if f, ok := target.Folder(); ok {
			verdict = folderrules.CanMoveFolder(dragged, f, known)
		} else {
			verdict = folderrules.CannotMergeFolderWithResource()
		}
	}

	s.Hover = target
	s.CanDrop = verdict.OK
	s.Reason = verdict.Reason
}

func (s *Session) leave() {
	s.Hover = Entity{}
	s.CanDrop = false
	s.Reason = ""
}

func (s *Session) reset() {
	*s = Session{}
}
