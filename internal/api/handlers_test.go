package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"resource-hub/internal/models"
	"resource-hub/internal/resources"

	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testUserToken)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	testServer.Router().ServeHTTP(rr, req)
	return rr
}

func createResourceAPI(t *testing.T, url string, folderID *string) models.Resource {
	t.Helper()
	rr := doRequest(t, "POST", "/api/v1/resources", CreateResourceRequest{URL: url, FolderID: folderID})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var r models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &r))
	return r
}

func createFolderAPI(t *testing.T, name string, parentID *string, rt models.ResourceType) models.Folder {
	t.Helper()
	rr := doRequest(t, "POST", "/api/v1/folders", CreateFolderRequest{Name: name, ParentID: parentID, ResourceType: rt})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var f models.Folder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &f))
	return f
}

func TestAPI_Login(t *testing.T) {
	body, _ := json.Marshal(LoginRequest{Username: "api_test_user", Password: "password"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	body, _ = json.Marshal(LoginRequest{Username: "api_test_user", Password: "wrong"})
	req = httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	body, _ = json.Marshal(LoginRequest{Username: "api_test_user"})
	req = httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_AuthRequired(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/resources", nil)
	rr := httptest.NewRecorder()
	testServer.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = httptest.NewRecorder()
	testServer.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPI_GetCurrentUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), userContextKey, testUserClaims))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.GetCurrentUserHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	require.Equal(t, "api_test_user", user.Username)
	require.NotContains(t, rr.Body.String(), "password")
}

func TestAPI_Health(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	testServer.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "OK", rr.Body.String())
}

func TestAPI_CreateResource(t *testing.T) {
	r := createResourceAPI(t, "https://github.com/go-chi/cors", nil)
	require.Equal(t, models.ResourceTypeGithub, r.Type)

	rr := doRequest(t, "POST", "/api/v1/resources", CreateResourceRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "POST", "/api/v1/resources", CreateResourceRequest{URL: "not a url"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	images := createFolderAPI(t, "API images", nil, models.ResourceTypeImage)
	rr = doRequest(t, "POST", "/api/v1/resources", CreateResourceRequest{URL: "https://example.com/x", FolderID: &images.ID})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "cannot place a Link resource in a Image folder")

	rr = doRequest(t, "GET", "/api/v1/resources/"+r.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/resources/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_UpdateResource(t *testing.T) {
	r := createResourceAPI(t, "https://example.com/api-update", nil)

	title := "Updated title"
	rr := doRequest(t, "PATCH", "/api/v1/resources/"+r.ID, UpdateResourceRequest{Title: &title})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.Equal(t, "Updated title", updated.Title)

	empty := ""
	rr = doRequest(t, "PATCH", "/api/v1/resources/"+r.ID, UpdateResourceRequest{Title: &empty})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_MoveAndCopyResource(t *testing.T) {
	links := createFolderAPI(t, "API links", nil, models.ResourceTypeLink)
	images := createFolderAPI(t, "API images 2", nil, models.ResourceTypeImage)
	r := createResourceAPI(t, "https://example.com/api-move", nil)

	rr := doRequest(t, "POST", "/api/v1/resources/"+r.ID+"/move", MoveResourceRequest{FolderID: &links.ID})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, "POST", "/api/v1/resources/"+r.ID+"/move", MoveResourceRequest{FolderID: &images.ID})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/resources?folder_id="+links.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, r.ID, listed[0].ID)

	other := createFolderAPI(t, "API links copy", nil, models.ResourceTypeLink)
	rr = doRequest(t, "POST", "/api/v1/resources/"+r.ID+"/copy", CopyResourceRequest{FolderID: other.ID})
	require.Equal(t, http.StatusCreated, rr.Code)
	var copied models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &copied))
	require.NotEqual(t, r.ID, copied.ID)
	require.Equal(t, other.ID, *copied.FolderID)

	rr = doRequest(t, "POST", "/api/v1/resources/"+r.ID+"/copy", CopyResourceRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_ResourceLifecycle(t *testing.T) {
	r := createResourceAPI(t, "https://example.com/api-lifecycle", nil)
	base := "/api/v1/resources/" + r.ID

	require.Equal(t, http.StatusNoContent, doRequest(t, "POST", base+"/archive", nil).Code)
	require.Equal(t, http.StatusConflict, doRequest(t, "POST", base+"/archive", nil).Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, "POST", base+"/unarchive", nil).Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, "DELETE", base, nil).Code)
	require.Equal(t, http.StatusConflict, doRequest(t, "DELETE", base, nil).Code)

	rr := doRequest(t, "GET", "/api/v1/trash", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var trash resources.Trash
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &trash))
	found := false
	for _, item := range trash.Resources {
		if item.ID == r.ID {
			found = true
		}
	}
	require.True(t, found)

	require.Equal(t, http.StatusNoContent, doRequest(t, "POST", base+"/restore", nil).Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, "DELETE", base+"/purge", nil).Code)
	require.Equal(t, http.StatusNotFound, doRequest(t, "GET", base, nil).Code)
}

func TestAPI_UploadAndDownload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "hello.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello world"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("type", "document"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/v1/resources/file", &buf)
	req.Header.Set("Authorization", "Bearer "+testUserToken)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	testServer.Router().ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, models.ResourceTypeDocument, created.Type)
	require.Equal(t, "hello.txt", created.Title)

	rr = doRequest(t, "GET", "/api/v1/resources/"+created.ID+"/download", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "hello world", rr.Body.String())
	require.Contains(t, rr.Header().Get("Content-Disposition"), "hello.txt")
}

func TestAPI_MergeResources(t *testing.T) {
	a := createResourceAPI(t, "https://example.com/api-merge-a", nil)
	b := createResourceAPI(t, "https://example.com/api-merge-b", nil)

	rr := doRequest(t, "POST", "/api/v1/folders/merge", MergeResourcesRequest{ResourceIDs: []string{a.ID, b.ID}})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var folder models.Folder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &folder))
	require.Equal(t, "New folder", folder.Name)
	require.Equal(t, models.ResourceTypeLink, folder.ResourceType)

	rr = doRequest(t, "GET", "/api/v1/resources/"+a.ID, nil)
	var moved models.Resource
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &moved))
	require.Equal(t, folder.ID, *moved.FolderID)

	gh := createResourceAPI(t, "https://github.com/api/merge", nil)
	rr = doRequest(t, "POST", "/api/v1/folders/merge", MergeResourcesRequest{ResourceIDs: []string{a.ID, gh.ID}})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "POST", "/api/v1/folders/merge", MergeResourcesRequest{ResourceIDs: []string{a.ID}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_FolderTree(t *testing.T) {
	parent := createFolderAPI(t, "API parent", nil, models.ResourceTypeArticle)
	child := createFolderAPI(t, "API child", &parent.ID, models.ResourceTypeArticle)

	rr := doRequest(t, "POST", "/api/v1/folders", CreateFolderRequest{Name: "Wrong", ParentID: &parent.ID, ResourceType: models.ResourceTypeLink})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "POST", "/api/v1/folders/"+parent.ID+"/move", MoveFolderRequest{ParentID: &child.ID})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "cannot place a folder inside its own sub-folder")

	rr = doRequest(t, "GET", "/api/v1/folders?parent_id="+parent.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []models.Folder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	name := "API child renamed"
	rr = doRequest(t, "PATCH", "/api/v1/folders/"+child.ID, UpdateFolderRequest{Name: &name})
	require.Equal(t, http.StatusOK, rr.Code)

	base := "/api/v1/folders/" + parent.ID
	require.Equal(t, http.StatusNoContent, doRequest(t, "POST", base+"/archive", nil).Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, "POST", base+"/unarchive", nil).Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, "DELETE", base, nil).Code)

	rr = doRequest(t, "GET", "/api/v1/folders/"+child.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var deletedChild models.Folder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deletedChild))
	require.NotNil(t, deletedChild.DeletedAt)

	require.Equal(t, http.StatusNoContent, doRequest(t, "POST", base+"/restore", nil).Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, "DELETE", base+"/purge", nil).Code)
	require.Equal(t, http.StatusNotFound, doRequest(t, "GET", "/api/v1/folders/"+child.ID, nil).Code)
}

func TestAPI_GetEvents(t *testing.T) {
	createResourceAPI(t, "https://example.com/api-events", nil)

	rr := doRequest(t, "GET", "/api/v1/events?since=0", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var events []EventResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.NotEmpty(t, events)

	rr = doRequest(t, "GET", "/api/v1/events?since=abc", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
