package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"resource-hub/internal/models"
	"resource-hub/internal/resources"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxUploadSize = 1 << 30

func parseListParams(r *http.Request, key string) resources.ListParams {
	var params resources.ListParams
	if id := r.URL.Query().Get(key); id != "" {
		params.FolderID = &id
	}
	params.IncludeArchived, _ = strconv.ParseBool(r.URL.Query().Get("include_archived"))
	return params
}

type CreateResourceRequest struct {
	URL         string              `json:"url" example:"https://github.com/go-chi/chi"`
	Title       string              `json:"title" example:"chi router"`
	Description *string             `json:"description"`
	Type        models.ResourceType `json:"type" example:"github"`
	FolderID    *string             `json:"folder_id"`
	Metadata    json.RawMessage     `json:"metadata" swaggertype:"object"`
}

func (r CreateResourceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required),
	)
}

type UpdateResourceRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	URL         *string         `json:"url"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
}

func (r UpdateResourceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
	)
}

type MoveResourceRequest struct {
	// FolderID nil moves the resource to the root.
	FolderID *string `json:"folder_id"`
}

func (r MoveResourceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FolderID, validation.NilOrNotEmpty),
	)
}

type CopyResourceRequest struct {
	FolderID string `json:"folder_id"`
}

func (r CopyResourceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FolderID, validation.Required),
	)
}

// @Summary      List resources
// @Description  Lists live resources directly inside a folder, or at the root when folder_id is omitted.
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        folder_id         query     string  false  "Folder ID"
// @Param        include_archived  query     bool    false  "Include archived resources"
// @Success      200  {array}   models.Resource
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /resources [get]
func (s *Server) ListResourcesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	list, err := s.svc.ListResources(r.Context(), claims.UserID, parseListParams(r, "folder_id"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to list resources")
		return
	}
	if list == nil {
		list = []models.Resource{}
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary      Create a link resource
// @Description  Creates a link, GitHub or article resource. The type is detected from the URL when omitted.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateResourceRequest  true  "Resource"
// @Success      201      {object}  models.Resource
// @Failure      400      {string}  string "Bad Request"
// @Failure      404      {string}  string "Folder not found"
// @Failure      500      {string}  string "Internal Server Error"
// @Router       /resources [post]
func (s *Server) CreateLinkResourceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateResourceRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := s.svc.CreateLinkResource(r.Context(), claims.UserID, resources.CreateLinkParams{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		FolderID:    req.FolderID,
		Metadata:    req.Metadata,
	})
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to create resource")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// @Summary      Upload a file resource
// @Description  Uploads a document or image resource as multipart form data.
// @Tags         resources
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file         formData  file    true   "File"
// @Param        type         formData  string  true   "document or image"
// @Param        title        formData  string  false  "Title, defaults to the file name"
// @Param        description  formData  string  false  "Description"
// @Param        folder_id    formData  string  false  "Target folder"
// @Success      201  {object}  models.Resource
// @Failure      400  {string}  string "Bad Request"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /resources/file [post]
func (s *Server) UploadResourceFileHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Error parsing multipart form", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params := resources.CreateFileParams{
		Type:     models.ResourceType(r.FormValue("type")),
		Title:    r.FormValue("title"),
		FileName: handler.Filename,
	}
	if v := r.FormValue("description"); v != "" {
		params.Description = &v
	}
	if v := r.FormValue("folder_id"); v != "" {
		params.FolderID = &v
	}
	if v := r.FormValue("metadata"); v != "" {
		params.Metadata = json.RawMessage(v)
	}

	created, err := s.svc.CreateFileResource(r.Context(), claims.UserID, params, file)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to create file resource")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// @Summary      Get a resource
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      200         {object}  models.Resource
// @Failure      404         {string}  string "Not Found"
// @Router       /resources/{resourceId} [get]
func (s *Server) GetResourceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	res, err := s.svc.GetResource(r.Context(), claims.UserID, chi.URLParam(r, "resourceId"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to retrieve resource")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary      Download a file resource
// @Tags         resources
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      200         {file}    file
// @Failure      404         {string}  string "Not Found"
// @Router       /resources/{resourceId}/download [get]
func (s *Server) DownloadResourceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	res, stream, err := s.svc.OpenResourceFile(r.Context(), claims.UserID, chi.URLParam(r, "resourceId"))
	if err != nil {
		s.writeStoreError(w, r, err, "File not found on storage")
		return
	}
	defer stream.Close()

	name := res.Title
	if res.FileName != nil {
		name = *res.FileName
	}
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	w.Header().Set("Content-Type", "application/octet-stream")
	io.Copy(w, stream)
}

// @Summary      Update a resource
// @Description  Edits title, description, URL or metadata. The type of a resource cannot change.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resourceId  path      string                 true  "Resource ID"
// @Param        request     body      UpdateResourceRequest  true  "Fields to change"
// @Success      200         {object}  models.Resource
// @Failure      400         {string}  string "Bad Request"
// @Failure      404         {string}  string "Not Found"
// @Router       /resources/{resourceId} [patch]
func (s *Server) UpdateResourceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req UpdateResourceRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	updated, err := s.svc.UpdateResource(r.Context(), claims.UserID, chi.URLParam(r, "resourceId"), resources.UpdateResourceParams{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Metadata:    req.Metadata,
	})
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to update resource")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// @Summary      Move a resource
// @Description  Moves a resource into a folder of the same type, or to the root when folder_id is null.
// @Tags         resources
// @Accept       json
// @Security     BearerAuth
// @Param        resourceId  path      string               true  "Resource ID"
// @Param        request     body      MoveResourceRequest  true  "Target"
// @Success      204         {null}    nil "No Content"
// @Failure      400         {string}  string "Type mismatch"
// @Failure      404         {string}  string "Not Found"
// @Router       /resources/{resourceId}/move [post]
func (s *Server) MoveResourceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req MoveResourceRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := s.svc.MoveResourceToFolder(r.Context(), claims.UserID, chi.URLParam(r, "resourceId"), req.FolderID); err != nil {
		s.writeStoreError(w, r, err, "Failed to move resource")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Copy a resource
// @Description  Duplicates a resource into a folder of the same type.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resourceId  path      string               true  "Resource ID"
// @Param        request     body      CopyResourceRequest  true  "Target"
// @Success      201         {object}  models.Resource
// @Failure      400         {string}  string "Type mismatch"
// @Failure      404         {string}  string "Not Found"
// @Router       /resources/{resourceId}/copy [post]
func (s *Server) CopyResourceHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CopyResourceRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	copied, err := s.svc.CopyResourceToFolder(r.Context(), claims.UserID, chi.URLParam(r, "resourceId"), req.FolderID)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to copy resource")
		return
	}
	writeJSON(w, http.StatusCreated, copied)
}

// lifecycleHandler adapts a resource or folder transition to a 204 handler.
func (s *Server) lifecycleHandler(param, failure string, op func(r *http.Request, userID int64, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		if err := op(r, claims.UserID, chi.URLParam(r, param)); err != nil {
			s.writeStoreError(w, r, err, failure)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary      Archive a resource
// @Tags         resources
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      204         {null}    nil "No Content"
// @Failure      404         {string}  string "Not Found"
// @Failure      409         {string}  string "Invalid lifecycle transition"
// @Router       /resources/{resourceId}/archive [post]
func (s *Server) ArchiveResourceHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("resourceId", "Failed to archive resource", func(r *http.Request, userID int64, id string) error {
		return s.svc.ArchiveResource(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Unarchive a resource
// @Tags         resources
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      204         {null}    nil "No Content"
// @Failure      404         {string}  string "Not Found"
// @Failure      409         {string}  string "Invalid lifecycle transition"
// @Router       /resources/{resourceId}/unarchive [post]
func (s *Server) UnarchiveResourceHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("resourceId", "Failed to unarchive resource", func(r *http.Request, userID int64, id string) error {
		return s.svc.UnarchiveResource(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Move a resource to the trash
// @Tags         resources
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      204         {null}    nil "No Content"
// @Failure      404         {string}  string "Not Found"
// @Failure      409         {string}  string "Already in the trash"
// @Router       /resources/{resourceId} [delete]
func (s *Server) DeleteResourceHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("resourceId", "Failed to delete resource", func(r *http.Request, userID int64, id string) error {
		return s.svc.DeleteResource(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Restore a resource from the trash
// @Description  Restores a resource. If its folder is still in the trash the resource is restored to the root.
// @Tags         resources
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      204         {null}    nil "No Content"
// @Failure      404         {string}  string "Not Found"
// @Failure      409         {string}  string "Not in the trash"
// @Router       /resources/{resourceId}/restore [post]
func (s *Server) RestoreResourceHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("resourceId", "Failed to restore resource", func(r *http.Request, userID int64, id string) error {
		return s.svc.RestoreResource(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Permanently delete a resource
// @Tags         resources
// @Security     BearerAuth
// @Param        resourceId  path      string  true  "Resource ID"
// @Success      204         {null}    nil "No Content"
// @Failure      404         {string}  string "Not Found"
// @Router       /resources/{resourceId}/purge [delete]
func (s *Server) PurgeResourceHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("resourceId", "Failed to purge resource", func(r *http.Request, userID int64, id string) error {
		return s.svc.PurgeResource(r.Context(), userID, id)
	})(w, r)
}
