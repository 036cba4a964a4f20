// Package services contains the server-side business logic. UserService
// handles registration, token resolution and the operator flows used by the
// admin CLI; ClothesService manages the catalog; PhotoService hands out
// presigned upload URLs for clothes photos.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clothescatalog/internal/common"
	"github.com/dmitrijs2005/clothescatalog/internal/dbx"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/dmitrijs2005/clothescatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/clothescatalog/internal/server/validation"
)

// ErrNotAdminRole is returned by BootstrapAdmin for roles other than admin
// and super_admin.
var ErrNotAdminRole = errors.New("role must be admin or super_admin")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, tokens TokenManager) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register validates the payload, stores a new user with role "user" and
// returns an access token for it. Nothing is inserted when validation
// fails; a taken email yields common.ErrEmailAlreadyRegistered.
func (s *UserService) Register(ctx context.Context, in validation.Registration) (string, error) {
	if err := validation.ValidateRegistration(in); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         models.RoleUser,
	})
	if err != nil {
		return "", err
	}

	return s.issue(user.ID)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// ResolveToken verifies token and loads its subject. A valid token whose
// user no longer exists resolves to a nil user without error.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// IssueToken checks an email/password pair and returns a fresh access token.
func (s *UserService) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	return s.issue(user.ID)
}

// BootstrapAdmin creates an account with the given admin role, or promotes
// the existing account with the same email. The lookup and the write run in
// one transaction. created reports whether a new row was inserted.
func (s *UserService) BootstrapAdmin(ctx context.Context, in validation.Registration, role models.Role) (user *models.User, created bool, err error) {
	if role != models.RoleAdmin && role != models.RoleSuperAdmin {
		return nil, false, ErrNotAdminRole
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		existing, err := repo.GetByEmail(ctx, in.Email)
		switch {
		case err == nil:
			user, err = repo.UpdateRole(ctx, existing.ID, role)
			return err
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		if err := validation.ValidateRegistration(in); err != nil {
			return err
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user, err = repo.Create(ctx, &models.User{
			Email:        in.Email,
			PasswordHash: hash,
			FullName:     in.FullName,
			Phone:        in.Phone,
			Role:         role,
		})
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

func (s *UserService) issue(userID string) (string, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
