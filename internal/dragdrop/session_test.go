package dragdrop

import (
	"encoding/json"
	"testing"

	"resource-hub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestEntity(t *testing.T) {
	var none Entity
	require.True(t, none.IsNone())
	require.Equal(t, "", none.ID())
	_, ok := none.Resource()
	require.False(t, ok)

	r := ResourceEntity(res("r1", models.ResourceTypeLink))
	require.Equal(t, KindResource, r.Kind())
	require.Equal(t, "r1", r.ID())
	_, ok = r.Folder()
	require.False(t, ok)

	f := FolderEntity(fold("r1", nil, models.ResourceTypeLink))
	require.False(t, r.same(f), "a resource and a folder never match, even with equal ids")
	require.True(t, r.same(ResourceEntity(res("r1", models.ResourceTypeGithub))))
	require.False(t, none.same(none))
}

func TestEntity_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Entity{})
	require.NoError(t, err)
	require.JSONEq(t, `null`, string(data))

	data, err = json.Marshal(FolderEntity(fold("f1", nil, models.ResourceTypeImage)))
	require.NoError(t, err)

	var decoded struct {
		Kind   string `json:"kind"`
		Folder struct {
			ID           string `json:"id"`
			ResourceType string `json:"resource_type"`
		} `json:"folder"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "folder", decoded.Kind)
	require.Equal(t, "f1", decoded.Folder.ID)
	require.Equal(t, "image", decoded.Folder.ResourceType)
}

func TestSession_EnterWhileIdleIsIgnored(t *testing.T) {
	var s Session
	s.enter(ResourceEntity(res("r", models.ResourceTypeLink)), nil)
	require.Equal(t, Session{}, s)
	require.Equal(t, StateIdle, s.State())
	require.Equal(t, "idle", s.State().String())
}

func TestSession_FolderHoverKeepsVerdictOfLastTarget(t *testing.T) {
	var s Session
	links := fold("links", nil, models.ResourceTypeLink)
	images := fold("images", nil, models.ResourceTypeImage)
	s.start(ResourceEntity(res("r", models.ResourceTypeLink)), Point{X: 1, Y: 1}, false)

	s.enter(FolderEntity(images), nil)
	require.False(t, s.CanDrop)
	require.Equal(t, "cannot place a Link resource in a Image folder", s.Reason)

	s.enter(FolderEntity(links), nil)
	require.True(t, s.CanDrop)
	require.Empty(t, s.Reason)
	require.Equal(t, "links", s.Hover.ID())
}
