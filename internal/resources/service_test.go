package resources

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"resource-hub/internal/database"
	"resource-hub/internal/models"
	"resource-hub/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishEvent(userID int64, eventData []byte) {
	var msg struct {
		EventType string `json:"event_type"`
	}
	_ = json.Unmarshal(eventData, &msg)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, msg.EventType)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func newTestService(t *testing.T) (*Service, *storage.LocalStorage, *recordingPublisher) {
	t.Helper()
	blobs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	pub := &recordingPublisher{}
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc, err := NewService(testStore, blobs, pub, logrus.NewEntry(log))
	require.NoError(t, err)
	return svc, blobs, pub
}

func createUser(t *testing.T, username string) int64 {
	t.Helper()
	user, err := testStore.CreateUser(context.Background(), database.CreateUserParams{
		Username:     username,
		PasswordHash: "not-a-real-hash",
	})
	require.NoError(t, err)
	return user.ID
}

func newLink(t *testing.T, svc *Service, userID int64, url string, folderID *string) *models.Resource {
	t.Helper()
	r, err := svc.CreateLinkResource(context.Background(), userID, CreateLinkParams{URL: url, FolderID: folderID})
	require.NoError(t, err)
	return r
}

func newFolder(t *testing.T, svc *Service, userID int64, name string, parentID *string, rt models.ResourceType) *models.Folder {
	t.Helper()
	f, err := svc.CreateFolder(context.Background(), userID, CreateFolderParams{Name: name, ParentID: parentID, ResourceType: rt})
	require.NoError(t, err)
	return f
}

func TestDetectLinkType(t *testing.T) {
	require.Equal(t, models.ResourceTypeGithub, DetectLinkType("https://github.com/jackc/pgx"))
	require.Equal(t, models.ResourceTypeGithub, DetectLinkType("https://www.GitHub.com/x"))
	require.Equal(t, models.ResourceTypeLink, DetectLinkType("https://gist.github.com/x"))
	require.Equal(t, models.ResourceTypeLink, DetectLinkType("https://example.com"))
	require.Equal(t, models.ResourceTypeLink, DetectLinkType("::not a url"))
}

func TestCreateLinkResource(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t)
	userID := createUser(t, "svc_create_link")

	r := newLink(t, svc, userID, "https://github.com/sirupsen/logrus", nil)
	require.Equal(t, models.ResourceTypeGithub, r.Type)
	require.Equal(t, "https://github.com/sirupsen/logrus", r.Title)
	require.Equal(t, []string{"resource_created"}, pub.types())

	_, err := svc.CreateLinkResource(ctx, userID, CreateLinkParams{URL: ""})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateLinkResource(ctx, userID, CreateLinkParams{URL: "https://example.com", Type: models.ResourceTypeImage})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateLinkResource(ctx, userID, CreateLinkParams{URL: "https://example.com", Metadata: json.RawMessage(`[1,2]`)})
	require.ErrorIs(t, err, ErrValidation)

	images := newFolder(t, svc, userID, "Images", nil, models.ResourceTypeImage)
	_, err = svc.CreateLinkResource(ctx, userID, CreateLinkParams{URL: "https://example.com", FolderID: &images.ID})
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Contains(t, err.Error(), "cannot place a Link resource in a Image folder")

	missing := "no-such-folder"
	_, err = svc.CreateLinkResource(ctx, userID, CreateLinkParams{URL: "https://example.com", FolderID: &missing})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateFileResource(t *testing.T) {
	ctx := context.Background()
	svc, blobs, _ := newTestService(t)
	userID := createUser(t, "svc_create_file")

	docs := newFolder(t, svc, userID, "Docs", nil, models.ResourceTypeDocument)
	r, err := svc.CreateFileResource(ctx, userID, CreateFileParams{
		Type: models.ResourceTypeDocument, FileName: "notes.txt", FolderID: &docs.ID,
	}, strings.NewReader("hello"))
	require.NoError(t, err)
	require.Equal(t, "notes.txt", r.Title)
	require.NotNil(t, r.StoragePath)

	_, rc, err := svc.OpenResourceFile(ctx, userID, r.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "hello", string(body))

	_, err = svc.CreateFileResource(ctx, userID, CreateFileParams{
		Type: models.ResourceTypeImage, FileName: "pic.png", FolderID: &docs.ID,
	}, strings.NewReader("png"))
	require.ErrorIs(t, err, ErrTypeMismatch)

	link := newLink(t, svc, userID, "https://example.com/file", nil)
	_, _, err = svc.OpenResourceFile(ctx, userID, link.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = blobs.Get(*r.StoragePath)
	require.NoError(t, err)
}

func TestUpdateResource(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	userID := createUser(t, "svc_update_resource")
	r := newLink(t, svc, userID, "https://example.com/u", nil)

	title := "Renamed"
	updated, err := svc.UpdateResource(ctx, userID, r.ID, UpdateResourceParams{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, r.Type, updated.Type)

	empty := ""
	_, err = svc.UpdateResource(ctx, userID, r.ID, UpdateResourceParams{Title: &empty})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateResource(ctx, userID, "missing", UpdateResourceParams{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMoveResourceToFolder(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t)
	userID := createUser(t, "svc_move_resource")

	links := newFolder(t, svc, userID, "Links", nil, models.ResourceTypeLink)
	images := newFolder(t, svc, userID, "Images", nil, models.ResourceTypeImage)
	r := newLink(t, svc, userID, "https://example.com/m", nil)

	require.NoError(t, svc.MoveResourceToFolder(ctx, userID, r.ID, &links.ID))
	got, err := svc.GetResource(ctx, userID, r.ID)
	require.NoError(t, err)
	require.Equal(t, links.ID, *got.FolderID)
	require.Contains(t, pub.types(), "resource_moved")

	err = svc.MoveResourceToFolder(ctx, userID, r.ID, &images.ID)
	require.ErrorIs(t, err, ErrTypeMismatch)
	got, err = svc.GetResource(ctx, userID, r.ID)
	require.NoError(t, err)
	require.Equal(t, links.ID, *got.FolderID)

	require.NoError(t, svc.MoveResourceToFolder(ctx, userID, r.ID, nil))
	got, err = svc.GetResource(ctx, userID, r.ID)
	require.NoError(t, err)
	require.Nil(t, got.FolderID)

	err = svc.MoveResourceToFolder(ctx, userID, "missing", &links.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCopyResourceToFolder(t *testing.T) {
	ctx := context.Background()
	svc, blobs, _ := newTestService(t)
	userID := createUser(t, "svc_copy_resource")

	first := newFolder(t, svc, userID, "First", nil, models.ResourceTypeDocument)
	second := newFolder(t, svc, userID, "Second", nil, models.ResourceTypeDocument)
	src, err := svc.CreateFileResource(ctx, userID, CreateFileParams{
		Type: models.ResourceTypeDocument, FileName: "a.txt", FolderID: &first.ID,
	}, strings.NewReader("payload"))
	require.NoError(t, err)

	copied, err := svc.CopyResourceToFolder(ctx, userID, src.ID, second.ID)
	require.NoError(t, err)
	require.NotEqual(t, src.ID, copied.ID)
	require.Equal(t, second.ID, *copied.FolderID)
	require.Equal(t, src.Title, copied.Title)
	require.NotEqual(t, *src.StoragePath, *copied.StoragePath)

	// The source stays where it was.
	got, err := svc.GetResource(ctx, userID, src.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, *got.FolderID)

	require.NoError(t, svc.PurgeResource(ctx, userID, src.ID))
	_, err = blobs.Get(*src.StoragePath)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, rc, err := svc.OpenResourceFile(ctx, userID, copied.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "payload", string(body))

	links := newFolder(t, svc, userID, "Links", nil, models.ResourceTypeLink)
	_, err = svc.CopyResourceToFolder(ctx, userID, copied.ID, links.ID)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestCreateFolder(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	userID := createUser(t, "svc_create_folder")

	parent := newFolder(t, svc, userID, "  Parent  ", nil, models.ResourceTypeArticle)
	require.Equal(t, "Parent", parent.Name)

	child := newFolder(t, svc, userID, "Child", &parent.ID, models.ResourceTypeArticle)
	require.Equal(t, parent.ID, *child.ParentID)

	_, err := svc.CreateFolder(ctx, userID, CreateFolderParams{Name: "Wrong", ParentID: &parent.ID, ResourceType: models.ResourceTypeLink})
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = svc.CreateFolder(ctx, userID, CreateFolderParams{Name: "", ResourceType: models.ResourceTypeLink})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateFolder(ctx, userID, CreateFolderParams{Name: "Bad", ResourceType: "video"})
	require.ErrorIs(t, err, ErrValidation)

	name := "Renamed"
	pos := 3
	updated, err := svc.UpdateFolder(ctx, userID, child.ID, UpdateFolderParams{Name: &name, Position: &pos})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, 3, updated.Position)

	listed, err := svc.ListFolders(ctx, userID, ListParams{FolderID: &parent.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, child.ID, listed[0].ID)
}

func TestCreateFolderFromResources(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t)
	userID := createUser(t, "svc_merge")

	outer := newFolder(t, svc, userID, "Outer", nil, models.ResourceTypeLink)
	a := newLink(t, svc, userID, "https://example.com/a", nil)
	b := newLink(t, svc, userID, "https://example.com/b", &outer.ID)

	folder, err := svc.CreateFolderFromResources(ctx, userID, [2]models.Resource{*a, *b}, "")
	require.NoError(t, err)
	require.Equal(t, "New folder", folder.Name)
	require.Equal(t, models.ResourceTypeLink, folder.ResourceType)
	require.Equal(t, outer.ID, *folder.ParentID)

	for _, id := range []string{a.ID, b.ID} {
		got, err := svc.GetResource(ctx, userID, id)
		require.NoError(t, err)
		require.Equal(t, folder.ID, *got.FolderID)
	}

	events := pub.types()
	require.Equal(t, []string{"folder_created", "resource_moved", "resource_moved"}, events[len(events)-3:])

	img, err := svc.CreateFileResource(ctx, userID, CreateFileParams{Type: models.ResourceTypeImage, FileName: "x.png"}, strings.NewReader("x"))
	require.NoError(t, err)
	_, err = svc.CreateFolderFromResources(ctx, userID, [2]models.Resource{*a, *img}, "Mixed")
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = svc.CreateFolderFromResources(ctx, userID, [2]models.Resource{*a, *a}, "Self")
	require.ErrorIs(t, err, ErrTypeMismatch)

	// Nothing changed for the rejected merge.
	got, err := svc.GetResource(ctx, userID, img.ID)
	require.NoError(t, err)
	require.Nil(t, got.FolderID)
}

func TestMoveFolder(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	userID := createUser(t, "svc_move_folder")

	root := newFolder(t, svc, userID, "Root", nil, models.ResourceTypeLink)
	mid := newFolder(t, svc, userID, "Mid", &root.ID, models.ResourceTypeLink)
	leaf := newFolder(t, svc, userID, "Leaf", &mid.ID, models.ResourceTypeLink)
	other := newFolder(t, svc, userID, "Other", nil, models.ResourceTypeLink)
	images := newFolder(t, svc, userID, "Images", nil, models.ResourceTypeImage)

	err := svc.MoveFolder(ctx, userID, root.ID, &root.ID)
	require.ErrorIs(t, err, ErrCycle)

	err = svc.MoveFolder(ctx, userID, root.ID, &leaf.ID)
	require.ErrorIs(t, err, ErrCycle)
	require.Contains(t, err.Error(), "cannot place a folder inside its own sub-folder")

	err = svc.MoveFolder(ctx, userID, root.ID, &images.ID)
	require.ErrorIs(t, err, ErrTypeMismatch)

	require.NoError(t, svc.MoveFolder(ctx, userID, root.ID, &other.ID))
	got, err := svc.GetFolder(ctx, userID, root.ID)
	require.NoError(t, err)
	require.Equal(t, other.ID, *got.ParentID)

	require.NoError(t, svc.MoveFolder(ctx, userID, leaf.ID, nil))
	got, err = svc.GetFolder(ctx, userID, leaf.ID)
	require.NoError(t, err)
	require.Nil(t, got.ParentID)
}

func TestResourceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	userID := createUser(t, "svc_resource_lifecycle")
	r := newLink(t, svc, userID, "https://example.com/life", nil)

	require.NoError(t, svc.ArchiveResource(ctx, userID, r.ID))
	require.ErrorIs(t, svc.ArchiveResource(ctx, userID, r.ID), ErrInvalidTransition)

	listed, err := svc.ListResources(ctx, userID, ListParams{})
	require.NoError(t, err)
	for _, l := range listed {
		require.NotEqual(t, r.ID, l.ID)
	}
	listed, err = svc.ListResources(ctx, userID, ListParams{IncludeArchived: true})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, svc.DeleteResource(ctx, userID, r.ID))
	require.ErrorIs(t, svc.DeleteResource(ctx, userID, r.ID), ErrInvalidTransition)
	require.ErrorIs(t, svc.UnarchiveResource(ctx, userID, r.ID), ErrInvalidTransition)

	require.NoError(t, svc.RestoreResource(ctx, userID, r.ID))
	got, err := svc.GetResource(ctx, userID, r.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateArchived, got.State())

	require.NoError(t, svc.UnarchiveResource(ctx, userID, r.ID))
	require.ErrorIs(t, svc.RestoreResource(ctx, userID, r.ID), ErrInvalidTransition)
}

func TestDeleteAndRestoreFolderTree(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	userID := createUser(t, "svc_folder_tree")

	parent := newFolder(t, svc, userID, "Parent", nil, models.ResourceTypeLink)
	child := newFolder(t, svc, userID, "Child", &parent.ID, models.ResourceTypeLink)
	inParent := newLink(t, svc, userID, "https://example.com/p", &parent.ID)
	inChild := newLink(t, svc, userID, "https://example.com/c", &child.ID)

	require.NoError(t, svc.DeleteFolder(ctx, userID, parent.ID))
	require.ErrorIs(t, svc.DeleteFolder(ctx, userID, parent.ID), ErrInvalidTransition)

	for _, id := range []string{inParent.ID, inChild.ID} {
		got, err := svc.GetResource(ctx, userID, id)
		require.NoError(t, err)
		require.Equal(t, models.StateDeleted, got.State())
	}
	gotChild, err := svc.GetFolder(ctx, userID, child.ID)
	require.NoError(t, err)
	gotParent, err := svc.GetFolder(ctx, userID, parent.ID)
	require.NoError(t, err)
	require.True(t, gotChild.DeletedAt.Equal(*gotParent.DeletedAt))

	trash, err := svc.ListTrash(ctx, userID)
	require.NoError(t, err)
	require.Len(t, trash.Folders, 2)
	require.Len(t, trash.Resources, 2)

	// Moving into a deleted folder is rejected.
	loose := newLink(t, svc, userID, "https://example.com/loose", nil)
	require.ErrorIs(t, svc.MoveResourceToFolder(ctx, userID, loose.ID, &child.ID), ErrNotFound)

	// A child restored on its own lands at the root while its parent stays deleted.
	require.NoError(t, svc.RestoreFolder(ctx, userID, child.ID))
	gotChild, err = svc.GetFolder(ctx, userID, child.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateActive, gotChild.State())
	require.Nil(t, gotChild.ParentID)
	got, err := svc.GetResource(ctx, userID, inChild.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateActive, got.State())

	require.NoError(t, svc.RestoreFolder(ctx, userID, parent.ID))
	got, err = svc.GetResource(ctx, userID, inParent.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateActive, got.State())
	require.Equal(t, parent.ID, *got.FolderID)
}

func TestArchiveFolder(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	userID := createUser(t, "svc_archive_folder")

	f := newFolder(t, svc, userID, "Archive me", nil, models.ResourceTypeLink)
	r := newLink(t, svc, userID, "https://example.com/keep", &f.ID)

	require.NoError(t, svc.ArchiveFolder(ctx, userID, f.ID))
	require.ErrorIs(t, svc.ArchiveFolder(ctx, userID, f.ID), ErrInvalidTransition)

	got, err := svc.GetResource(ctx, userID, r.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateActive, got.State())

	require.NoError(t, svc.UnarchiveFolder(ctx, userID, f.ID))
	require.ErrorIs(t, svc.UnarchiveFolder(ctx, userID, f.ID), ErrInvalidTransition)
	require.ErrorIs(t, svc.ArchiveFolder(ctx, userID, "missing"), ErrNotFound)
}

func TestPurgeFolder(t *testing.T) {
	ctx := context.Background()
	svc, blobs, pub := newTestService(t)
	userID := createUser(t, "svc_purge_folder")

	parent := newFolder(t, svc, userID, "Parent", nil, models.ResourceTypeImage)
	child := newFolder(t, svc, userID, "Child", &parent.ID, models.ResourceTypeImage)
	img, err := svc.CreateFileResource(ctx, userID, CreateFileParams{
		Type: models.ResourceTypeImage, FileName: "deep.png", FolderID: &child.ID,
	}, strings.NewReader("png"))
	require.NoError(t, err)

	require.NoError(t, svc.PurgeFolder(ctx, userID, parent.ID))
	require.Contains(t, pub.types(), "folder_purged")

	_, err = svc.GetFolder(ctx, userID, child.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetResource(ctx, userID, img.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = blobs.Get(*img.StoragePath)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, svc.PurgeFolder(ctx, userID, parent.ID), ErrNotFound)
}

func TestPurgeTrash(t *testing.T) {
	ctx := context.Background()
	svc, blobs, _ := newTestService(t)
	userID := createUser(t, "svc_purge_trash")

	folder := newFolder(t, svc, userID, "Docs", nil, models.ResourceTypeDocument)
	inFolder, err := svc.CreateFileResource(ctx, userID, CreateFileParams{
		Type: models.ResourceTypeDocument, FileName: "in.txt", FolderID: &folder.ID,
	}, strings.NewReader("in"))
	require.NoError(t, err)
	loose := newLink(t, svc, userID, "https://example.com/trash", nil)
	kept := newLink(t, svc, userID, "https://example.com/kept", nil)

	require.NoError(t, svc.DeleteFolder(ctx, userID, folder.ID))
	require.NoError(t, svc.DeleteResource(ctx, userID, loose.ID))

	require.NoError(t, svc.PurgeTrash(ctx, userID))

	trash, err := svc.ListTrash(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, trash.Folders)
	require.Empty(t, trash.Resources)

	_, err = blobs.Get(*inFolder.StoragePath)
	require.ErrorIs(t, err, os.ErrNotExist)

	got, err := svc.GetResource(ctx, userID, kept.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateActive, got.State())
}
