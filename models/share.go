package models

// ShareRequest shares one item with another user. Metadata is encrypted
// under the receiver's public key.
type ShareRequest struct {
	UUID     string   `json:"uuid"`
	Parent   string   `json:"parent"`
	Email    string   `json:"email"`
	Type     ItemType `json:"type"`
	Metadata string   `json:"metadata"`
}

// ShareResult reports the outcome of sharing with one recipient.
type ShareResult struct {
	Email string
	Err   error
}
