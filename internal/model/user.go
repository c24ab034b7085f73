package model

// User represents an authenticated account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsPremium bool   `json:"isPremium"`
	Avatar    string `json:"avatar,omitempty"`
}
