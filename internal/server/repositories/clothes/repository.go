package clothes

import (
	"context"

	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.Clothes) (*models.Clothes, error)
	List(ctx context.Context) ([]*models.Clothes, error)
}
