// Package httpapi exposes the catalog over HTTP: registration, user and
// clothes listings, admin-only catalog writes and photo upload URLs.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/clothescatalog/internal/logging"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/dmitrijs2005/clothescatalog/internal/server/services"
	"github.com/dmitrijs2005/clothescatalog/internal/server/validation"
)

type UserService interface {
	Register(ctx context.Context, in validation.Registration) (string, error)
	List(ctx context.Context) ([]*models.User, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

type ClothesService interface {
	Create(ctx context.Context, in validation.NewClothes) (*models.Clothes, error)
	List(ctx context.Context) ([]*models.Clothes, error)
}

type PhotoService interface {
	PresignUpload(ctx context.Context, contentType string) (*services.PhotoUpload, error)
}

type Handler struct {
	users   UserService
	clothes ClothesService
	photos  PhotoService
	logger  logging.Logger
}

func NewHandler(us UserService, cs ClothesService, ps PhotoService, l logging.Logger) *Handler {
	return &Handler{
		users:   us,
		clothes: cs,
		photos:  ps,
		logger:  l.With("module", "http"),
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	var in validation.Registration
	if err := decodeJSON(w, r, &in); err != nil {
		return err
	}

	token, err := h.users.Register(r.Context(), in)
	if err != nil {
		return err
	}

	h.logger.Info(r.Context(), "user registered", "email", in.Email)
	writeJSON(w, http.StatusCreated, tokenResponse{Token: token})
	return nil
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.users.List(r.Context())
	if err != nil {
		return err
	}

	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, newUserView(u))
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handler) listClothes(w http.ResponseWriter, r *http.Request, _ Principal) error {
	items, err := h.clothes.List(r.Context())
	if err != nil {
		return err
	}

	out := make([]ClothesView, 0, len(items))
	for _, c := range items {
		out = append(out, newClothesView(c))
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handler) createClothes(w http.ResponseWriter, r *http.Request, p Principal) error {
	var in validation.NewClothes
	if err := decodeJSON(w, r, &in); err != nil {
		return err
	}

	item, err := h.clothes.Create(r.Context(), in)
	if err != nil {
		return err
	}

	h.logger.Info(r.Context(), "clothes item created", "id", item.ID, "by", p.User.ID)
	writeJSON(w, http.StatusCreated, newClothesView(item))
	return nil
}

// createPhotoUpload accepts an empty body, meaning the default content type.
func (h *Handler) createPhotoUpload(w http.ResponseWriter, r *http.Request, _ Principal) error {
	var in photoUploadRequest
	if err := decodeJSON(w, r, &in); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	upload, err := h.photos.PresignUpload(r.Context(), in.ContentType)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, newPhotoUploadResponse(upload))
	return nil
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
	return nil
}
