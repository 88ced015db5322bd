package model

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// ResponseApi wraps auth endpoint replies.
type ResponseApi struct {
	ApiMessage string `json:"message"`
	Data       any    `json:"data,omitempty"`
}
