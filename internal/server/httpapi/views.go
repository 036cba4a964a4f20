package httpapi

import (
	"time"

	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/dmitrijs2005/clothescatalog/internal/server/services"
)

// UserView is the public shape of a user. It never carries the password hash.
type UserView struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Phone          *string   `json:"phone"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

func newUserView(u *models.User) UserView {
	return UserView{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Role:           string(u.Role),
		CreatedAt:      u.CreatedAt,
		LastModifiedAt: u.LastModifiedAt,
	}
}

type ClothesView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	Size           string    `json:"size"`
	PhotoURL       *string   `json:"photo_url"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

func newClothesView(c *models.Clothes) ClothesView {
	return ClothesView{
		ID:             c.ID,
		Name:           c.Name,
		Color:          string(c.Color),
		Size:           string(c.Size),
		PhotoURL:       c.PhotoURL,
		CreatedAt:      c.CreatedAt,
		LastModifiedAt: c.LastModifiedAt,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type photoUploadRequest struct {
	ContentType string `json:"content_type"`
}

type photoUploadResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	PhotoURL  string    `json:"photo_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newPhotoUploadResponse(u *services.PhotoUpload) photoUploadResponse {
	return photoUploadResponse{
		Key:       u.Key,
		UploadURL: u.UploadURL,
		PhotoURL:  u.PhotoURL,
		ExpiresAt: u.ExpiresAt,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}
