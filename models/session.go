package models

import "time"

// ClientSession is the signed-in state the terminal client caches locally so
// a restarted client can keep using its access token without a fresh signin.
// The token never expires server-side, so a cached session stays valid until
// the user signs out.
type ClientSession struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	SavedAt     time.Time `json:"saved_at"`
}
