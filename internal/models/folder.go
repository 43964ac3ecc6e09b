package models

import "time"

type Folder struct {
	ID           string       `json:"id"`
	UserID       int64        `json:"user_id"`
	Name         string       `json:"name"`
	ParentID     *string      `json:"parent_id"`
	ResourceType ResourceType `json:"resource_type"`
	Color        string       `json:"color"`
	Icon         string       `json:"icon"`
	Position     int          `json:"position"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Lifecycle
}
