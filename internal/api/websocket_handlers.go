package api

import (
	"net/http"

	"resource-hub/internal/auth"
	"resource-hub/internal/websocket"
)

// authenticateWs checks the token query parameter. Browsers cannot set headers
// on websocket handshakes, so the bearer token travels in the URL.
func (s *Server) authenticateWs(w http.ResponseWriter, r *http.Request) (*auth.AppClaims, bool) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		s.log.Debug("ws connection attempt without token")
		http.Error(w, "Token required", http.StatusUnauthorized)
		return nil, false
	}

	claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
	if err != nil {
		s.log.WithError(err).Debug("ws connection attempt with invalid token")
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

// ServeWsHandler streams the user's journal events as they are committed.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticateWs(w, r)
	if !ok {
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.UserID)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
