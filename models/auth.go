package models

// AuthInfoRequest asks the server which KDF parameters an account uses.
type AuthInfoRequest struct {
	Email string `json:"email"`
}

// AuthInfo is the pre-login answer of the server. It is public: the salt
// and auth version alone reveal nothing about the password.
type AuthInfo struct {
	// AuthVersion selects the key derivation parameter set.
	AuthVersion int `json:"authVersion"`

	// Salt is the account salt. Empty for legacy (v1) accounts.
	Salt string `json:"salt"`

	// ID is the numeric account identifier.
	ID int64 `json:"id"`
}

// RegisterRequest creates an account. Password is the derived auth
// secret, never the plaintext password.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Salt        string `json:"salt"`
	AuthVersion int    `json:"authVersion"`
}

// LoginRequest authenticates with the derived auth secret.
type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"twoFactorCode"`
	AuthVersion   int    `json:"authVersion"`
}

// LoginResponse carries the API key of the new session and the server copy
// of the account key material.
type LoginResponse struct {
	APIKey string `json:"apiKey"`

	// MasterKeys is the serialized master key ring encrypted under the
	// newest master key.
	MasterKeys string `json:"masterKeys"`

	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// Session is the locally persisted state of an authenticated client.
type Session struct {
	Email       string `json:"email"`
	APIKey      string `json:"apiKey"`
	UserID      int64  `json:"userId"`
	AuthVersion int    `json:"authVersion"`
}

// Credentials is what the user types to log in.
type Credentials struct {
	Email         string
	Password      string
	TwoFactorCode string
}
