package services

import (
	"context"
	"fmt"
	"time"
	"webstore/models"
	"webstore/repository"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService handles registration and login. Registered accounts get the
// customer role and a generated customer number.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *ServiceError)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError)
}

type authServiceImpl struct {
	repo      repository.UserRepository
	jwtSecret []byte
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo repository.UserRepository, jwtSecret string, logger *zap.Logger) AuthService {
	return &authServiceImpl{repo: repo, jwtSecret: []byte(jwtSecret), logger: logger, now: time.Now}
}

func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *ServiceError) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to register user"}
	}

	count, err := s.repo.CountCustomers(ctx)
	if err != nil {
		s.logger.Error("Failed to count customers", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to register user"}
	}
	customerNumber := fmt.Sprintf("CUST-%05d", count+1)

	user := &models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           models.RoleCustomer,
		IsActive:       true,
		CustomerNumber: &customerNumber,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Email already registered"}
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to register user"}
	}

	s.logger.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("customer_number", customerNumber),
	)
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
		}
		s.logger.Error("Failed to fetch user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to log in"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid email or password"}
	}
	if !user.IsActive {
		return nil, &ServiceError{StatusCode: 403, Message: "Account is disabled"}
	}

	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to log in"}
	}

	s.logger.Info("User logged in", zap.Uint("user_id", user.ID))
	return &models.LoginResponse{Token: token, User: user}, nil
}
