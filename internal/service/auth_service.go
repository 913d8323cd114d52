package service

import (
	"errors"

	"github.com/pindranil/waste-wise-report/config"
	"github.com/pindranil/waste-wise-report/internal/auth"
	"github.com/pindranil/waste-wise-report/internal/models"
	"github.com/pindranil/waste-wise-report/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCreds = errors.New("invalid email or password")

// AuthService checks the seeded demo credentials and issues access tokens.
// There is no registration; the two accounts are fixed reference data.
type AuthService struct {
	cfg   *config.Config
	store *store.Store
}

func NewAuthService(cfg *config.Config, st *store.Store) *AuthService {
	return &AuthService{cfg: cfg, store: st}
}

func (s *AuthService) Login(email, password string) (models.User, string, error) {
	u, err := s.store.UserByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}
