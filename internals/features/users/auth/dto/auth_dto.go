package dto

import "listrikku_backend/internals/features/users/auth/service"

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        service.Principal `json:"user"`
}
