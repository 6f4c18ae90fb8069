package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20"`
	Email    string `json:"email" validate:"required,email_shape"`
	Password string `json:"password" validate:"required,min=4"`
}

type RegisterResponse struct {
	Success bool `json:"success"`
	UserID  uint `json:"userId"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
