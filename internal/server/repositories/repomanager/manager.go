package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/clothescatalog/internal/dbx"
	"github.com/dmitrijs2005/clothescatalog/internal/server/repositories/clothes"
	"github.com/dmitrijs2005/clothescatalog/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Clothes(db dbx.DBTX) clothes.Repository
}
