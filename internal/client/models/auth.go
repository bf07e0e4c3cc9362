package models

// LoginUser is the small user block returned next to the token.
type LoginUser struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	ForcePasswordChange bool   `json:"force_password_change,omitempty"`
}

// LoginResponse is returned by the credential endpoint.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	Role        Role       `json:"role"`
	User        *LoginUser `json:"user,omitempty"`
	Profile     *Profile   `json:"profile,omitempty"`
}

// MustChangePassword relays the backend's mandatory password change flag.
func (r LoginResponse) MustChangePassword() bool {
	return r.User != nil && r.User.ForcePasswordChange
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Message is the generic {"message": "..."} acknowledgement.
type Message struct {
	Message string `json:"message,omitempty"`
	Success *bool  `json:"success,omitempty"`
}
