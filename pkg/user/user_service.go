package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"topup-store/domain"
	"topup-store/entities"
	"topup-store/pkg/jwt"
	"topup-store/pkg/store"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*entities.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		GetAllUsers(ctx context.Context) ([]entities.User, error)
		GetUser(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (*entities.User, error)
		AdjustBalance(ctx context.Context, id string, amount int) (*entities.User, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		store      store.Store
		jwtService jwt.JWTService
	}
)

func NewUserService(st store.Store, jwtService jwt.JWTService) UserService {
	return &userService{
		store:      st,
		jwtService: jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*entities.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
		FullName: req.FullName,
		Role:     entities.RoleUser,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login deliberately reports the same error for an unknown email and a
// wrong password, so accounts cannot be enumerated.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID, user.Role)
	return &domain.LoginResponse{Token: token, User: *user}, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	return s.store.GetAllUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (*entities.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		existing, err := s.store.GetUserByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Balance != nil {
		user.Balance = *req.Balance
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AdjustBalance(ctx context.Context, id string, amount int) (*entities.User, error) {
	user, err := s.store.UpdateUserBalance(ctx, id, amount)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}
