package auth

import (
	"context"
	"errors"
	"strings"

	"shopdash/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users UserRepositoryInterface
	shops ShopReader
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, shops ShopReader, jwt jwtService) *Service {
	return &Service{users: users, shops: shops, jwt: jwt}
}

// Signup registers a new account. It never issues a token: the dashboard
// sends the user to the login screen after a successful registration.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	role := domain.RoleCustomer
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !domain.ValidSignupRole(role) {
			return nil, ErrInvalidRole
		}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := s.populateShops(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populateShops(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// populateShops fills managedShops for roles that own shops.
func (s *Service) populateShops(ctx context.Context, user *domain.User) error {
	if user.Role != domain.RoleShopAdmin && user.Role != domain.RoleCustomer {
		return nil
	}
	shops, err := s.shops.ListByOwner(ctx, user.ID)
	if err != nil {
		return err
	}
	refs := make([]domain.ShopRef, 0, len(shops))
	for _, shop := range shops {
		refs = append(refs, domain.PopulatedShop(shop))
	}
	user.ManagedShops = refs
	return nil
}
