package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/bouquet"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/store"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse is the user plus the session token, for clients that prefer
// a bearer header over the cookie.
type authResponse struct {
	*store.User
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, common.NewValidationError("body", "invalid request body"))
		return
	}

	user, token, err := s.auth.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	user, token, err := s.auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := common.TokenFromContext(r.Context()); ok {
		s.auth.Logout(token)
	}
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleListBouquets(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	bouquets, err := s.bouquets.ListBouquets(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bouquets)
}

func (s *Server) handleCreateBouquet(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	var in bouquet.CreateBouquetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, common.NewValidationError("body", "invalid request body"))
		return
	}

	b, err := s.bouquets.CreateBouquet(r.Context(), userID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrUnauthenticated)
		return
	}

	bouquetID, err := strconv.ParseUint(mux.Vars(r)["bouquetId"], 10, 64)
	if err != nil {
		// an unparsable id can't reference anything, same merged 404
		writeError(w, common.ErrNotFound)
		return
	}

	var in bouquet.CreateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, common.NewValidationError("body", "invalid request body"))
		return
	}

	m, err := s.bouquets.CreateMessage(r.Context(), userID, bouquetID, s.origin(r), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	m, err := s.bouquets.GetMessage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// hard stop a little above the file cap so multipart framing does not
	// trip honest clients; the file store enforces the exact byte ceiling
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.NewValidationError("file", "no file uploaded"))
		return
	}
	defer file.Close()

	username, _ := r.Context().Value(common.ContextUsername).(string)

	url, err := s.files.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), username, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.cfg.Auth.TokenTTLHours * 3600,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
