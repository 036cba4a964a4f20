package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/dmitrijs2005/clothescatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/clothescatalog/internal/server/validation"
)

type ClothesService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClothesService(db *sql.DB, m repomanager.RepositoryManager) *ClothesService {
	return &ClothesService{db: db, repomanager: m}
}

// Create validates the payload and stores a new catalog item.
func (s *ClothesService) Create(ctx context.Context, in validation.NewClothes) (*models.Clothes, error) {
	item, err := validation.ValidateClothes(in)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Clothes(s.db).Create(ctx, item)
}

func (s *ClothesService) List(ctx context.Context) ([]*models.Clothes, error) {
	return s.repomanager.Clothes(s.db).List(ctx)
}
