package domain

import (
	"errors"

	"topup-store/entities"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetUsers      = "users retrieved successfully"
	MessageSuccessGetUser       = "user retrieved successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessUpdateBalance = "balance updated successfully"
	MessageSuccessDeleteUser    = "user deleted successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "invalid credentials"
	MessageFailedGetUsers      = "failed to retrieve users"
	MessageFailedGetUser       = "failed to retrieve user"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedUpdateBalance = "failed to update balance"
	MessageFailedDeleteUser    = "failed to delete user"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	// Registration carries no role or balance; every new account starts
	// as a zero-balance user, and only an admin can change either later.
	RegisterRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}

	// Zero-valued fields are left unchanged; Balance is a pointer so an
	// explicit zero can be distinguished from "not provided".
	UpdateUserRequest struct {
		Username string `json:"username"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
		Role     string `json:"role" validate:"omitempty,oneof=user admin"`
		Balance  *int   `json:"balance"`
	}

	// Amount is a pointer so an explicit zero delta is accepted.
	UpdateBalanceRequest struct {
		Amount *int `json:"amount" validate:"required"`
	}
)
