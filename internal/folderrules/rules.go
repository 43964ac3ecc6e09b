// Package folderrules decides which drag-and-drop placements are legal.
// Every function here is pure; nothing touches storage.
package folderrules

import (
	"fmt"

	"resource-hub/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// Verdict is the answer to a placement question. Reason is empty when OK is true.
type Verdict struct {
	OK     bool
	Reason string
}

func allow() Verdict {
	return Verdict{OK: true}
}

func reject(format string, args ...any) Verdict {
	return Verdict{Reason: fmt.Sprintf(format, args...)}
}

var typeLabels = map[models.ResourceType]string{
	models.ResourceTypeLink:     "Link",
	models.ResourceTypeGithub:   "GitHub",
	models.ResourceTypeDocument: "Document",
	models.ResourceTypeImage:    "Image",
	models.ResourceTypeArticle:  "Article",
}

// TypeLabel returns the display label of a resource type.
func TypeLabel(t models.ResourceType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// CanMergeResources reports whether two resources may be combined into a new folder.
func CanMergeResources(a, b models.Resource) Verdict {
	if a.ID == b.ID {
		return reject("cannot merge a resource with itself")
	}
	if a.Type != b.Type {
		return reject("cannot place %s and %s in the same folder", TypeLabel(a.Type), TypeLabel(b.Type))
	}
	return allow()
}

// CanAddResourceToFolder reports whether r may live inside f.
func CanAddResourceToFolder(r models.Resource, f models.Folder) Verdict {
	if r.Type != f.ResourceType {
		return reject("cannot place a %s resource in a %s folder", TypeLabel(r.Type), TypeLabel(f.ResourceType))
	}
	return allow()
}

// CanMoveFolder reports whether folder g may become a child of folder h. The
// ancestry of h is walked through known, so h may not be any descendant of g.
func CanMoveFolder(g, h models.Folder, known []models.Folder) Verdict {
	if g.ID == h.ID {
		return reject("cannot place a folder inside itself")
	}
	if g.ResourceType != h.ResourceType {
		return reject("cannot place a %s folder inside a %s folder", TypeLabel(g.ResourceType), TypeLabel(h.ResourceType))
	}
	if h.ParentID != nil && *h.ParentID == g.ID {
		return reject("cannot place a folder inside its own sub-folder")
	}
	if IsDescendant(known, g.ID, h) {
		return reject("cannot place a folder inside its own sub-folder")
	}
	return allow()
}

// CannotMergeFolderWithResource is the verdict for hovering a dragged folder over a resource.
func CannotMergeFolderWithResource() Verdict {
	return reject("folders cannot be merged with resources")
}

// IsDescendant walks the parent chain of candidate and reports whether ancestorID
// appears on it. Parents missing from known end the walk. A repeated id also ends
// it, so corrupted data cannot loop forever.
func IsDescendant(known []models.Folder, ancestorID string, candidate models.Folder) bool {
	byID := make(map[string]models.Folder, len(known))
	for _, f := range known {
		byID[f.ID] = f
	}

	visited := mapset.NewThreadUnsafeSet[string](candidate.ID)
	current := candidate
	for current.ParentID != nil {
		parentID := *current.ParentID
		if parentID == ancestorID {
			return true
		}
		if !visited.Add(parentID) {
			return false
		}
		parent, ok := byID[parentID]
		if !ok {
			return false
		}
		current = parent
	}
	return false
}

// Acyclic reports whether the parent graph over folders has no cycles.
func Acyclic(folders []models.Folder) bool {
	for _, f := range folders {
		if IsDescendant(folders, f.ID, f) {
			return false
		}
	}
	return true
}
