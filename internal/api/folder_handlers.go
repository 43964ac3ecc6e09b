package api

import (
	"net/http"

	"resource-hub/internal/models"
	"resource-hub/internal/resources"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateFolderRequest struct {
	Name         string              `json:"name" example:"Reading list"`
	ParentID     *string             `json:"parent_id"`
	ResourceType models.ResourceType `json:"resource_type" example:"article"`
	Color        string              `json:"color" example:"#3b82f6"`
	Icon         string              `json:"icon" example:"book"`
	Position     int                 `json:"position"`
}

func (r CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.ResourceType, validation.Required),
	)
}

type UpdateFolderRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Icon     *string `json:"icon"`
	Position *int    `json:"position"`
}

func (r UpdateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
	)
}

type MergeResourcesRequest struct {
	// ResourceIDs holds the dragged resource first and the drop target second.
	ResourceIDs []string `json:"resource_ids"`
	Name        string   `json:"name" example:"New folder"`
}

func (r MergeResourcesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ResourceIDs, validation.Required, validation.Length(2, 2), validation.Each(validation.Required)),
	)
}

type MoveFolderRequest struct {
	// ParentID nil moves the folder to the root.
	ParentID *string `json:"parent_id"`
}

func (r MoveFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ParentID, validation.NilOrNotEmpty),
	)
}

// @Summary      List folders
// @Description  Lists live folders directly inside a folder, or at the root when parent_id is omitted.
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        parent_id         query     string  false  "Parent folder ID"
// @Param        include_archived  query     bool    false  "Include archived folders"
// @Success      200  {array}   models.Folder
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /folders [get]
func (s *Server) ListFoldersHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	list, err := s.svc.ListFolders(r.Context(), claims.UserID, parseListParams(r, "parent_id"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to list folders")
		return
	}
	if list == nil {
		list = []models.Folder{}
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary      Create a folder
// @Description  Creates a folder holding one resource type. A parent must hold the same type.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateFolderRequest  true  "Folder"
// @Success      201      {object}  models.Folder
// @Failure      400      {string}  string "Bad Request"
// @Failure      404      {string}  string "Parent not found"
// @Router       /folders [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateFolderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := s.svc.CreateFolder(r.Context(), claims.UserID, resources.CreateFolderParams{
		Name:         req.Name,
		ParentID:     req.ParentID,
		ResourceType: req.ResourceType,
		Color:        req.Color,
		Icon:         req.Icon,
		Position:     req.Position,
	})
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to create folder")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// @Summary      Group two resources into a new folder
// @Description  Creates a folder where the second resource lives and moves both resources into it. Both must share a type.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      MergeResourcesRequest  true  "Resources"
// @Success      201      {object}  models.Folder
// @Failure      400      {string}  string "Type mismatch"
// @Failure      404      {string}  string "Not Found"
// @Router       /folders/merge [post]
func (s *Server) MergeResourcesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req MergeResourcesRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	pair := [2]models.Resource{{ID: req.ResourceIDs[0]}, {ID: req.ResourceIDs[1]}}
	folder, err := s.svc.CreateFolderFromResources(r.Context(), claims.UserID, pair, req.Name)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to create folder")
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

// @Summary      Get a folder
// @Tags         folders
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      200       {object}  models.Folder
// @Failure      404       {string}  string "Not Found"
// @Router       /folders/{folderId} [get]
func (s *Server) GetFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	folder, err := s.svc.GetFolder(r.Context(), claims.UserID, chi.URLParam(r, "folderId"))
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to retrieve folder")
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

// @Summary      Update a folder
// @Description  Renames a folder or changes its color, icon or position.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folderId  path      string               true  "Folder ID"
// @Param        request   body      UpdateFolderRequest  true  "Fields to change"
// @Success      200       {object}  models.Folder
// @Failure      400       {string}  string "Bad Request"
// @Failure      404       {string}  string "Not Found"
// @Router       /folders/{folderId} [patch]
func (s *Server) UpdateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req UpdateFolderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	updated, err := s.svc.UpdateFolder(r.Context(), claims.UserID, chi.URLParam(r, "folderId"), resources.UpdateFolderParams{
		Name:     req.Name,
		Color:    req.Color,
		Icon:     req.Icon,
		Position: req.Position,
	})
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to update folder")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// @Summary      Move a folder
// @Description  Re-parents a folder. The target must hold the same type and must not be inside the moved folder.
// @Tags         folders
// @Accept       json
// @Security     BearerAuth
// @Param        folderId  path      string             true  "Folder ID"
// @Param        request   body      MoveFolderRequest  true  "Target"
// @Success      204       {null}    nil "No Content"
// @Failure      400       {string}  string "Type mismatch or cycle"
// @Failure      404       {string}  string "Not Found"
// @Router       /folders/{folderId}/move [post]
func (s *Server) MoveFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req MoveFolderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := s.svc.MoveFolder(r.Context(), claims.UserID, chi.URLParam(r, "folderId"), req.ParentID); err != nil {
		s.writeStoreError(w, r, err, "Failed to move folder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Archive a folder
// @Description  Archives the folder row only; its contents keep their state.
// @Tags         folders
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      204       {null}    nil "No Content"
// @Failure      404       {string}  string "Not Found"
// @Failure      409       {string}  string "Invalid lifecycle transition"
// @Router       /folders/{folderId}/archive [post]
func (s *Server) ArchiveFolderHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("folderId", "Failed to archive folder", func(r *http.Request, userID int64, id string) error {
		return s.svc.ArchiveFolder(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Unarchive a folder
// @Tags         folders
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      204       {null}    nil "No Content"
// @Failure      404       {string}  string "Not Found"
// @Failure      409       {string}  string "Invalid lifecycle transition"
// @Router       /folders/{folderId}/unarchive [post]
func (s *Server) UnarchiveFolderHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("folderId", "Failed to unarchive folder", func(r *http.Request, userID int64, id string) error {
		return s.svc.UnarchiveFolder(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Move a folder to the trash
// @Description  Soft-deletes the folder, its sub-folders and every resource inside them.
// @Tags         folders
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      204       {null}    nil "No Content"
// @Failure      404       {string}  string "Not Found"
// @Failure      409       {string}  string "Already in the trash"
// @Router       /folders/{folderId} [delete]
func (s *Server) DeleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("folderId", "Failed to delete folder", func(r *http.Request, userID int64, id string) error {
		return s.svc.DeleteFolder(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Restore a folder from the trash
// @Description  Restores the folder tree. A folder whose parent is still in the trash is restored to the root.
// @Tags         folders
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      204       {null}    nil "No Content"
// @Failure      404       {string}  string "Not Found"
// @Failure      409       {string}  string "Not in the trash"
// @Router       /folders/{folderId}/restore [post]
func (s *Server) RestoreFolderHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("folderId", "Failed to restore folder", func(r *http.Request, userID int64, id string) error {
		return s.svc.RestoreFolder(r.Context(), userID, id)
	})(w, r)
}

// @Summary      Permanently delete a folder
// @Description  Deletes the folder tree and every resource inside it, including stored files.
// @Tags         folders
// @Security     BearerAuth
// @Param        folderId  path      string  true  "Folder ID"
// @Success      204       {null}    nil "No Content"
// @Failure      404       {string}  string "Not Found"
// @Router       /folders/{folderId}/purge [delete]
func (s *Server) PurgeFolderHandler(w http.ResponseWriter, r *http.Request) {
	s.lifecycleHandler("folderId", "Failed to purge folder", func(r *http.Request, userID int64, id string) error {
		return s.svc.PurgeFolder(r.Context(), userID, id)
	})(w, r)
}
