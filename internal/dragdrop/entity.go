package dragdrop

import (
	"encoding/json"

	"resource-hub/internal/models"
)

type EntityKind int

const (
	KindNone EntityKind = iota
	KindResource
	KindFolder
)

func (k EntityKind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindFolder:
		return "folder"
	}
	return "none"
}

// Entity is either a resource, a folder, or nothing. The zero value is nothing.
type Entity struct {
	kind     EntityKind
	resource models.Resource
	folder   models.Folder
}

func ResourceEntity(r models.Resource) Entity {
	return Entity{kind: KindResource, resource: r}
}

func FolderEntity(f models.Folder) Entity {
	return Entity{kind: KindFolder, folder: f}
}

func (e Entity) Kind() EntityKind { return e.kind }

func (e Entity) IsNone() bool { return e.kind == KindNone }

func (e Entity) Resource() (models.Resource, bool) {
	return e.resource, e.kind == KindResource
}

func (e Entity) Folder() (models.Folder, bool) {
	return e.folder, e.kind == KindFolder
}

func (e Entity) ID() string {
	switch e.kind {
	case KindResource:
		return e.resource.ID
	case KindFolder:
		return e.folder.ID
	}
	return ""
}

// same reports whether e and other refer to the same stored entity.
func (e Entity) same(other Entity) bool {
	return e.kind != KindNone && e.kind == other.kind && e.ID() == other.ID()
}

func (e Entity) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case KindResource:
		return json.Marshal(struct {
			Kind     string          `json:"kind"`
			Resource models.Resource `json:"resource"`
		}{e.kind.String(), e.resource})
	case KindFolder:
		return json.Marshal(struct {
			Kind   string        `json:"kind"`
			Folder models.Folder `json:"folder"`
		}{e.kind.String(), e.folder})
	}
	return []byte("null"), nil
}
