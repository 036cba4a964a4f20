// Package clothes provides the PostgreSQL-backed catalog repository.
package clothes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clothescatalog/internal/dbx"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/google/uuid"
)

const selectColumns = `id, name, color::text, size::text, photo_url, created_at, last_modified_at`

// newID is a seam for tests.
var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClothes(row rowScanner) (*models.Clothes, error) {
	var (
		c           models.Clothes
		color, size string
	)
	if err := row.Scan(&c.ID, &c.Name, &color, &size, &c.PhotoURL, &c.CreatedAt, &c.LastModifiedAt); err != nil {
		return nil, err
	}

	var err error
	if c.Color, err = models.ParseColor(color); err != nil {
		return nil, fmt.Errorf("decode color: %w", err)
	}
	if c.Size, err = models.ParseSize(size); err != nil {
		return nil, fmt.Errorf("decode size: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Clothes) (*models.Clothes, error) {
	query :=
		`INSERT INTO clothes (id, name, color, size, photo_url)
		 VALUES ($1, $2, $3::clothes_color, $4::clothes_size, $5)
		 RETURNING ` + selectColumns

	created, err := scanClothes(r.db.QueryRowContext(ctx, query,
		newID(), item.Name, string(item.Color), string(item.Size), item.PhotoURL))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// List returns the whole catalog, oldest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Clothes, error) {
	query := `SELECT ` + selectColumns + ` FROM clothes ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Clothes{}
	for rows.Next() {
		c, err := scanClothes(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
