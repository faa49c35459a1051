package domain

import "time"

// Session is an authenticated dashboard session. RefreshToken is the Google
// OAuth refresh token used for every Ads API call made on the user's behalf.
type Session struct {
	ID           string    `json:"id"`
	RefreshToken string    `json:"refreshToken"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
