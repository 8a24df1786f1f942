package services

import (
	"context"
	stderrors "errors"
	"strings"

	"paju/constants"
	"paju/dto"
	"paju/errors"
	"paju/models"
	"paju/repository"
	"paju/services/logger"
	"paju/validator"
)

type UserServiceOptions struct {
	Users  repository.UserRepository
	Logger logger.Logger
}

// UserService quản lý tài khoản CMS, chỉ admin được gọi
type UserService struct {
	users  repository.UserRepository
	logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &UserService{users: opts.Users, logger: opts.Logger}
}

func validateUserID(userID uint) error {
	if userID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "User id is required", nil)
	}
	return nil
}

func (s *UserService) wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err), stderrors.Is(err, repository.ErrNotFound):
		return err
	case stderrors.Is(err, repository.ErrDuplicate):
		return errors.NewAppError(errors.ErrCodeUserExists, "Username already exists", err)
	}
	s.logger.Error("%s: %v", op, err)
	return errors.NewAppError(errors.ErrCodeDBError, "Could not "+op, err)
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, s.wrap("list users", err)
	}
	return dto.NewUserResponses(users), nil
}

func (s *UserService) Create(ctx context.Context, in dto.CreateUserInput) (*dto.UserResponse, error) {
	user := &models.User{
		Username: strings.TrimSpace(in.Username),
		Role:     in.Role,
		IsActive: true,
	}
	if user.Role == "" {
		user.Role = constants.RoleEditor
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := validator.ValidateUser(user); err != nil {
		return nil, err
	}
	if err := validator.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, s.wrap("hash password", err)
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		return nil, s.wrap("create user", err)
	}
	s.logger.Info("user %q created with role %s", user.Username, user.Role)
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Update sửa user. actorID là admin đang thao tác, không được tự khóa hoặc tự hạ quyền
func (s *UserService) Update(ctx context.Context, actorID, id uint, in dto.UpdateUserInput) (*dto.UserResponse, error) {
	if err := validateUserID(id); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap("load user", err)
	}

	if actorID == id {
		if in.IsActive != nil && !*in.IsActive {
			return nil, errors.NewAppError(errors.ErrCodeSelfOperation, "Cannot deactivate your own account", nil)
		}
		if in.Role != nil && *in.Role != user.Role {
			return nil, errors.NewAppError(errors.ErrCodeSelfOperation, "Cannot change your own role", nil)
		}
	}

	if in.Username != nil {
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := validator.ValidateUser(user); err != nil {
		return nil, err
	}
	if in.Password != nil && *in.Password != "" {
		if err := validator.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, s.wrap("hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, s.wrap("update user", err)
	}
	s.logger.Info("user %d updated by %d", id, actorID)
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, id uint) error {
	if err := validateUserID(id); err != nil {
		return err
	}
	if actorID == id {
		return errors.NewAppError(errors.ErrCodeSelfOperation, "Cannot delete your own account", nil)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return s.wrap("delete user", err)
	}
	s.logger.Info("user %d deleted by %d", id, actorID)
	return nil
}
