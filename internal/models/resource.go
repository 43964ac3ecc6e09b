package models

import (
	"encoding/json"
	"time"
)

type ResourceType string

const (
	ResourceTypeLink     ResourceType = "link"
	ResourceTypeGithub   ResourceType = "github"
	ResourceTypeDocument ResourceType = "document"
	ResourceTypeImage    ResourceType = "image"
	ResourceTypeArticle  ResourceType = "article"
)

var ResourceTypes = []ResourceType{
	ResourceTypeLink,
	ResourceTypeGithub,
	ResourceTypeDocument,
	ResourceTypeImage,
	ResourceTypeArticle,
}

func (t ResourceType) Valid() bool {
	for _, known := range ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsFile reports whether resources of this type keep their payload in object storage.
func (t ResourceType) IsFile() bool {
	return t == ResourceTypeDocument || t == ResourceTypeImage
}

type Resource struct {
	ID          string          `json:"id"`
	UserID      int64           `json:"user_id"`
	Type        ResourceType    `json:"type"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	URL         *string         `json:"url,omitempty"`
	StoragePath *string         `json:"storage_path,omitempty"`
	FileName    *string         `json:"file_name,omitempty"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
	FolderID    *string         `json:"folder_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Lifecycle
}
