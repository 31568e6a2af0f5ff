package models

// RenameRequest stores new metadata for an item. Name is kept only for
// folders and carries the same encrypted blob as Metadata. NameHashed lets
// the server detect duplicates without learning the name.
type RenameRequest struct {
	UUID       string   `json:"uuid"`
	Type       ItemType `json:"-"`
	Name       string   `json:"name,omitempty"`
	NameHashed string   `json:"nameHashed"`
	Metadata   string   `json:"metadata"`
}

// UploadDoneRequest finalizes an upload after all chunks are stored.
type UploadDoneRequest struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	NameHashed string `json:"nameHashed"`
	Size       string `json:"size"`
	Chunks     int    `json:"chunks"`
	Mime       string `json:"mime"`
	Rm         string `json:"rm"`
	Metadata   string `json:"metadata"`
	Version    int    `json:"version"`
	UploadKey  string `json:"uploadKey"`
}

// UploadedFile is the client view of a finished upload, before encryption.
type UploadedFile struct {
	UUID      string
	Parent    string
	Name      string
	Size      int64
	Mime      string
	Key       string
	Chunks    int
	UploadKey string
	// LastModified is in milliseconds.
	LastModified int64
}
