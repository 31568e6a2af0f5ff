package models

// MasterKeysRequest uploads the client ring encrypted under its newest key.
type MasterKeysRequest struct {
	MasterKeys string `json:"masterKeys"`
}

// MasterKeysResponse is the server copy of the ring, encrypted under a key
// the client is expected to hold.
type MasterKeysResponse struct {
	Keys string `json:"keys"`
}

// KeyPairInfo is the server copy of the account keypair. PrivateKey is
// encrypted under a master key. Either half may be empty or a short
// placeholder when the account has no keypair yet.
type KeyPairInfo struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// KeyPairRequest sets or updates the keypair on the server.
type KeyPairRequest struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// ChangePasswordRequest replaces the account credentials and uploads the
// extended ring encrypted under the new master key.
type ChangePasswordRequest struct {
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
	AuthVersion     int    `json:"authVersion"`
	Salt            string `json:"salt"`
	MasterKeys      string `json:"masterKeys"`
}

// ChangePasswordResponse carries the API key that replaces the current one.
type ChangePasswordResponse struct {
	NewAPIKey string `json:"newAPIKey"`
}

// PublicKeyRequest looks up another user's public key by email.
type PublicKeyRequest struct {
	Email string `json:"email"`
}

type PublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

// PasswordChange is the user input of a password change form.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}
