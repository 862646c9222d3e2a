package response_models

type UserSummary struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	FullName      string  `json:"full_name"`
	Role          string  `json:"role"`
	IsActive      bool    `json:"is_active"`
	IsVerified    bool    `json:"is_verified"`
	WalletAddress *string `json:"wallet_address,omitempty"`
}

type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	User         UserSummary `json:"user"`
}
