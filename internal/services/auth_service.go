package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/repositories"
)

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AccountPatch is a merge-patch for account updates: only present fields
// overwrite stored values.
type AccountPatch struct {
	Name         *string `json:"full_name"`
	Email        *string `json:"email"`
	MobileNumber *string `json:"mobile_number"`
}

type AuthService interface {
	Register(ctx context.Context, name, email, mobileNumber, password string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*models.User, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, patch *AccountPatch) (*models.User, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	tokenSvc   TokenService
	bcryptCost int
}

func NewAuthService(userRepo repositories.UserRepository, tokenSvc TokenService, bcryptCost int) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:   userRepo,
		tokenSvc:   tokenSvc,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The existence pre-checks are a fast path
// for friendly error messages; the unique constraints in storage remain the
// final authority, so a racing insert surfaces as Conflict.
func (s *authService) Register(ctx context.Context, name, email, mobileNumber, password string) (*AuthResponse, error) {
	emailTaken, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("failed to check email uniqueness", err)
	}
	if emailTaken {
		return nil, apperrors.BadRequest("An account with this email already exists")
	}

	mobileTaken, err := s.userRepo.ExistsByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, apperrors.Internal("failed to check mobile number uniqueness", err)
	}
	if mobileTaken {
		return nil, apperrors.BadRequest("An account with this mobile number already exists")
	}

	pairTaken, err := s.userRepo.ExistsByEmailAndMobileNumber(ctx, email, mobileNumber)
	if err != nil {
		return nil, apperrors.Internal("failed to check account uniqueness", err)
	}
	if pairTaken {
		return nil, apperrors.BadRequest("An account with this email and mobile number combination already exists")
	}

	existing, err := s.userRepo.FindByEmailOrMobileNumber(ctx, email, mobileNumber)
	if err != nil {
		return nil, apperrors.Internal("failed to look up existing account", err)
	}
	if existing != nil {
		if existing.Email == email {
			return nil, apperrors.BadRequest("An account with this email already exists")
		}
		return nil, apperrors.BadRequest("An account with this mobile number already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("An account with this email or mobile number already exists")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}

	token, err := s.tokenSvc.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials. A missing account and a wrong password produce
// the same response to avoid user enumeration.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	token, err := s.tokenSvc.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("User not found")
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return nil, apperrors.BadRequest("Current password is incorrect")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)); err == nil {
		return nil, apperrors.BadRequest("New password must be different from current password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, apperrors.Internal("failed to update password", err)
	}

	user.PasswordHash = string(hash)
	return user, nil
}

func (s *authService) UpdateAccount(ctx context.Context, userID uuid.UUID, patch *AccountPatch) (*models.User, error) {
	if patch.Name == nil && patch.Email == nil && patch.MobileNumber == nil {
		return nil, apperrors.BadRequest("At least one field must be provided for update")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("User not found")
	}

	if patch.Email != nil && *patch.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, apperrors.Internal("failed to check email uniqueness", err)
		}
		if taken {
			return nil, apperrors.BadRequest("An account with this email already exists")
		}
	}

	if patch.MobileNumber != nil && *patch.MobileNumber != user.MobileNumber {
		taken, err := s.userRepo.ExistsByMobileNumber(ctx, *patch.MobileNumber)
		if err != nil {
			return nil, apperrors.Internal("failed to check mobile number uniqueness", err)
		}
		if taken {
			return nil, apperrors.BadRequest("An account with this mobile number already exists")
		}
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.MobileNumber != nil {
		user.MobileNumber = *patch.MobileNumber
	}

	if err := s.userRepo.UpdateAccount(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("An account with this email or mobile number already exists")
		}
		return nil, apperrors.Internal("failed to update account", err)
	}

	return user, nil
}
