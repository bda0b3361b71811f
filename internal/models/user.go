package models

// UserProfile is the minimal local profile. Authentication is mocked; the
// profile only personalises greetings.
type UserProfile struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Avatar  string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	IsGuest bool   `json:"is_guest" yaml:"is_guest"`
}

// GuestProfile returns the profile used by "continue as guest".
func GuestProfile() UserProfile {
	return UserProfile{
		ID:      "guest",
		Name:    "Guest User",
		Email:   "guest@flow.local",
		IsGuest: true,
	}
}
