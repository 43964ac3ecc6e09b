package resources

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"resource-hub/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	maxTitleLength      = 512
	maxFolderNameLength = 255
)

// typeRule accepts an empty type (left to validation.Required) or one accept agrees with.
func typeRule(accept func(models.ResourceType) bool, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		t, _ := value.(models.ResourceType)
		if t == "" || accept(t) {
			return nil
		}
		return errors.New(message)
	})
}

var (
	linkType = typeRule(func(t models.ResourceType) bool { return t.Valid() && !t.IsFile() }, "must be link, github or article")
	fileType = typeRule(models.ResourceType.IsFile, "must be document or image")
	anyType  = typeRule(models.ResourceType.Valid, "must be a valid resource type")
)

func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

var jsonObject = validation.By(func(value interface{}) error {
	raw, _ := value.(json.RawMessage)
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("must be a JSON object")
	}
	return nil
})

// DetectLinkType classifies a URL: github.com hosts are GitHub resources,
// everything else a plain link.
func DetectLinkType(rawURL string) models.ResourceType {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return models.ResourceTypeLink
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "github.com" {
		return models.ResourceTypeGithub
	}
	return models.ResourceTypeLink
}

type CreateLinkParams struct {
	URL         string
	Title       string
	Description *string
	// Type is optional; it is detected from URL when empty.
	Type     models.ResourceType
	FolderID *string
	Metadata json.RawMessage
}

func (p CreateLinkParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.URL, validation.Required, is.URL),
		validation.Field(&p.Title, validation.Length(0, maxTitleLength)),
		validation.Field(&p.Type, linkType),
		validation.Field(&p.Metadata, jsonObject),
	)
}

type CreateFileParams struct {
	Type        models.ResourceType
	Title       string
	FileName    string
	Description *string
	FolderID    *string
	Metadata    json.RawMessage
}

func (p CreateFileParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.Required, fileType),
		validation.Field(&p.FileName, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Title, validation.Length(0, maxTitleLength)),
		validation.Field(&p.Metadata, jsonObject),
	)
}

type UpdateResourceParams struct {
	Title       *string
	Description *string
	URL         *string
	Metadata    json.RawMessage
}

func (p UpdateResourceParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, maxTitleLength)),
		validation.Field(&p.URL, validation.NilOrNotEmpty, is.URL),
		validation.Field(&p.Metadata, jsonObject),
	)
}

type CreateFolderParams struct {
	Name         string
	ParentID     *string
	ResourceType models.ResourceType
	Color        string
	Icon         string
	Position     int
}

func (p CreateFolderParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, maxFolderNameLength)),
		validation.Field(&p.ResourceType, validation.Required, anyType),
		validation.Field(&p.Position, validation.Min(0)),
	)
}

type UpdateFolderParams struct {
	Name     *string
	Color    *string
	Icon     *string
	Position *int
}

func (p UpdateFolderParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, maxFolderNameLength)),
		validation.Field(&p.Position, validation.Min(0)),
	)
}

type ListParams struct {
	FolderID        *string
	IncludeArchived bool
}
