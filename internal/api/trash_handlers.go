package api

import (
	"net/http"

	"resource-hub/internal/models"
	_ "resource-hub/internal/resources"
)

// @Summary      Purge trash
// @Description  Permanently deletes all resources and folders in the user's trash. This action cannot be undone.
// @Tags         trash
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /trash/purge [delete]
func (s *Server) PurgeTrashHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if err := s.svc.PurgeTrash(r.Context(), claims.UserID); err != nil {
		s.writeStoreError(w, r, err, "Failed to purge trash")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      List trash contents
// @Description  Retrieves every resource and folder currently in the user's trash.
// @Tags         trash
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  resources.Trash
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /trash [get]
func (s *Server) ListTrashHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	trash, err := s.svc.ListTrash(r.Context(), claims.UserID)
	if err != nil {
		s.writeStoreError(w, r, err, "Failed to list trash contents")
		return
	}
	if trash.Resources == nil {
		trash.Resources = []models.Resource{}
	}
	if trash.Folders == nil {
		trash.Folders = []models.Folder{}
	}

	writeJSON(w, http.StatusOK, trash)
}
