package models

// Envelope is the uniform JSON wrapper returned by every endpoint:
// Response carries the payload on success or a client-facing message on
// failure, Success tells the two apart.
type Envelope struct {
	Response any  `json:"response"`
	Success  bool `json:"success"`
}

// Message is the object form of a failure payload, used where the source API
// wraps the message in an object rather than returning a bare string
// (the 401 path of the auth gate).
type Message struct {
	Message string `json:"message"`
}

// AuthResponse is the payload returned by both signup and signin: the
// identity of the account plus the bearer credential for subsequent requests.
type AuthResponse struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}
