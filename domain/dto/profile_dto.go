package dto

// CreateProfileRequest completes onboarding for an authenticated user.
type CreateProfileRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}
