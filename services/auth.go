package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"paju/errors"
	"paju/models"
	"paju/repository"
	"paju/services/logger"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type AuthServiceOptions struct {
	Users  repository.UserRepository
	Tokens *TokenService
	Logger logger.Logger
}

// AuthService đăng nhập và xác thực session của CMS
type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
	logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		users:  opts.Users,
		tokens: opts.Tokens,
		logger: opts.Logger,
	}
}

// Login kiểm tra username/password và cấp token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, errors.NewAppError(errors.ErrCodeRequiredField, "Username and password are required", nil)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if stderrors.Is(err, repository.ErrNotFound) {
		s.logger.Info("login failed for unknown user %q", username)
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid credentials", errors.ErrInvalidCredentials)
	}
	if err != nil {
		s.logger.Error("login lookup %q: %v", username, err)
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load user", err)
	}
	if !CheckPassword(user.PasswordHash, password) {
		s.logger.Info("login failed for %q: wrong password", username)
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, "Invalid credentials", errors.ErrInvalidCredentials)
	}
	if !user.IsActive {
		s.logger.Info("login refused for inactive user %q", username)
		return "", nil, errors.NewAppError(errors.ErrCodeUserInactive, "Account is disabled", errors.ErrUserInactive)
	}

	token, err := s.tokens.GenerateToken(UserInfo{UserId: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		s.logger.Error("sign token for %q: %v", username, err)
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Could not issue token", err)
	}
	s.logger.Info("user %q logged in", username)
	return token, user, nil
}

// Verify kiểm tra token và trạng thái hiện tại của user
func (s *AuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	info, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, info.UserId)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "User no longer exists", errors.ErrUnauthorized)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load user", err)
	}
	if !user.IsActive {
		return nil, errors.NewAppError(errors.ErrCodeUserInactive, "Account is disabled", errors.ErrUserInactive)
	}
	return user, nil
}

// Tokens trả về token service cho middleware
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}
