package services

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/portfolio-backend/internal/common"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/auth"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/repomanager"
)

// UserService handles admin login: credential verification and minting the
// initial token pair.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	renewer     *auth.Renewer
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, renewer *auth.Renewer) *UserService {
	return &UserService{db: db, repomanager: m, renewer: renewer}
}

// Login verifies the password against the stored bcrypt hash and, on
// success, returns a fresh token pair. Unknown emails and bad passwords are
// both reported as common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.renewer.Renew(user.ID)
}
