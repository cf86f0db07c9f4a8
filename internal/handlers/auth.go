package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/authpix/apiserver/internal/auth"
	"github.com/authpix/apiserver/internal/events"
	"github.com/authpix/apiserver/internal/services"
	"github.com/authpix/apiserver/internal/storage"
	"github.com/authpix/apiserver/internal/store"
	"github.com/authpix/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// invalidCredentialsMessage is returned for both unknown-email and
// wrong-password failures so the two cases are indistinguishable to callers.
const invalidCredentialsMessage = "Invalid email or password"

// AuthHandler provides the signup, login and profile-image endpoints.
type AuthHandler struct {
	users   *services.UserService
	storage *storage.Storage
	events  *events.Emitter
	logger  *slog.Logger
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(users *services.UserService, st *storage.Storage, emitter *events.Emitter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:   users,
		storage: st,
		events:  emitter,
		logger:  logger,
	}
}

// AuthRouter registers the auth routes on the given router.
func AuthRouter(r chi.Router, handler *AuthHandler) {
	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
	r.Put("/updateProfileImage", handler.UpdateProfileImage)
}

type SignupRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Password    string `json:"password"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileImageRequest struct {
	Email          string `json:"email"`
	OldImageKey    string `json:"oldImageKey"`
	NewFilename    string `json:"newFilename"`
	NewContentType string `json:"newContentType"`
}

type UploadResponse struct {
	UploadURL string `json:"uploadURL"`
}

type LoginResponse struct {
	Message         string `json:"message"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
	Token           string `json:"token"`
}

// Signup creates a user record and returns a presigned upload URL for the
// profile image. The record write and the presign are independent steps;
// the upload itself happens later, directly against object storage.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.Email == "" || req.Name == "" || req.Password == "" || req.Filename == "" || req.ContentType == "" {
		writeError(w, http.StatusInternalServerError, "missing required fields")
		return
	}

	salt, digest, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	user := types.User{
		Email:           req.Email,
		Name:            req.Name,
		PasswordHash:    digest,
		Salt:            salt,
		ProfileImageURL: h.storage.ObjectURL(req.Filename),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	uploadURL, err := h.storage.PresignPut(r.Context(), req.Filename, req.ContentType, storage.DefaultPresignExpiry)
	if err != nil {
		// The record already points at an object that will never be
		// uploaded now; report the dangling state instead of hiding it.
		h.logger.Warn("user record created but upload URL was not issued",
			"email", req.Email, "key", req.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.events.Emit(r.Context(), events.TypeUserSignedUp, req.Email)
	writeJSON(w, http.StatusOK, UploadResponse{UploadURL: uploadURL})
}

// Login verifies credentials and returns an opaque bearer token along with
// the stored profile image URL.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusInternalServerError, "missing required fields")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusInternalServerError, invalidCredentialsMessage)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if auth.HashPasswordWithSalt(req.Password, user.Salt) != user.PasswordHash {
		writeError(w, http.StatusInternalServerError, invalidCredentialsMessage)
		return
	}

	h.events.Emit(r.Context(), events.TypeUserLoggedIn, user.Email)
	writeJSON(w, http.StatusOK, LoginResponse{
		Message:         "Login successful",
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
		Token:           auth.CreateToken(user.Email),
	})
}

// UpdateProfileImage removes the old image, issues a presigned URL for the
// new one and repoints the user record. The three steps are not atomic: the
// old image is gone as soon as step one succeeds, so later failures are
// logged as an inconsistent intermediate state.
func (h *AuthHandler) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.Email == "" || req.OldImageKey == "" || req.NewFilename == "" || req.NewContentType == "" {
		writeError(w, http.StatusInternalServerError, "missing required fields")
		return
	}

	if err := h.storage.Delete(r.Context(), req.OldImageKey); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	uploadURL, err := h.storage.PresignPut(r.Context(), req.NewFilename, req.NewContentType, storage.DefaultPresignExpiry)
	if err != nil {
		h.logger.Warn("old profile image removed but replacement upload URL was not issued",
			"email", req.Email, "oldKey", req.OldImageKey, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.users.UpdateProfileImage(r.Context(), req.Email, h.storage.ObjectURL(req.NewFilename)); err != nil {
		h.logger.Warn("old profile image removed but user record was not updated",
			"email", req.Email, "oldKey", req.OldImageKey, "newKey", req.NewFilename, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.events.Emit(r.Context(), events.TypeProfileImageUpdated, req.Email)
	writeJSON(w, http.StatusOK, UploadResponse{UploadURL: uploadURL})
}
