package models

// ListingSource identifies which view a folder listing came from. It decides
// which key opens the item metadata.
type ListingSource string

const (
	SourceOwn       ListingSource = "own"
	SourceSharedIn  ListingSource = "shared-in"
	SourceSharedOut ListingSource = "shared-out"
	SourceRecent    ListingSource = "recent"
	SourceTrash     ListingSource = "trash"
	SourceLink      ListingSource = "link"
)

// Valid reports whether s is a known source.
func (s ListingSource) Valid() bool {
	switch s {
	case SourceOwn, SourceSharedIn, SourceSharedOut, SourceRecent, SourceTrash, SourceLink:
		return true
	}
	return false
}

// ItemType distinguishes files from folders.
type ItemType string

const (
	ItemFile   ItemType = "file"
	ItemFolder ItemType = "folder"
)

// ContentRequest asks for the direct children of a folder. The special
// folder identifiers "recents" and "trash" select those views.
type ContentRequest struct {
	UUID string `json:"uuid"`
}

const (
	RecentsFolder = "recents"
	TrashFolder   = "trash"
)

// RawFile is a file record as the server sends it. Metadata is an encrypted
// blob of [FileMetadata].
type RawFile struct {
	UUID      string `json:"uuid"`
	Metadata  string `json:"metadata"`
	Parent    string `json:"parent"`
	Timestamp int64  `json:"timestamp"`
	Chunks    int    `json:"chunks"`
	Size      int64  `json:"size"`
	Region    string `json:"region"`
	Bucket    string `json:"bucket"`
	Version   int    `json:"version"`

	// SharerEmail is set on shared-in records.
	SharerEmail string `json:"sharerEmail,omitempty"`
	// ReceiverEmail is set on shared-out records.
	ReceiverEmail string `json:"receiverEmail,omitempty"`
}

// RawFolder is a folder record as the server sends it. Own folders carry the
// encrypted [FolderMetadata] in Name, shared and link folders in Metadata.
type RawFolder struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name,omitempty"`
	Metadata  string `json:"metadata,omitempty"`
	Parent    string `json:"parent"`
	Timestamp int64  `json:"timestamp"`
	Color     string `json:"color,omitempty"`

	SharerEmail   string `json:"sharerEmail,omitempty"`
	ReceiverEmail string `json:"receiverEmail,omitempty"`
}

// EncryptedName returns whichever field carries the encrypted folder metadata.
func (f RawFolder) EncryptedName() string {
	if f.Metadata != "" {
		return f.Metadata
	}
	return f.Name
}

// FolderContent is one page of a folder listing. Own listings name files
// "uploads" while link listings name them "files"; both are accepted.
type FolderContent struct {
	Files   []RawFile   `json:"uploads"`
	Folders []RawFolder `json:"folders"`
}

// LinkFolderContent is the listing of a folder reached through a public link.
type LinkFolderContent struct {
	Files   []RawFile   `json:"files"`
	Folders []RawFolder `json:"folders"`
}

// Content converts a link listing to the common listing shape.
func (c LinkFolderContent) Content() FolderContent {
	return FolderContent{Files: c.Files, Folders: c.Folders}
}

// DecodedItem is a listing entry with its metadata decrypted and sanitized.
// It lives only in memory and in the metadata cache.
type DecodedItem struct {
	UUID   string        `json:"uuid"`
	Parent string        `json:"parent"`
	Type   ItemType      `json:"type"`
	Source ListingSource `json:"source"`

	Name string `json:"name"`
	Size int64  `json:"size"`
	Mime string `json:"mime,omitempty"`

	// Key is the per-file content key. Empty for folders.
	Key string `json:"key,omitempty"`

	// LastModified is in milliseconds since the Unix epoch.
	LastModified int64 `json:"lastModified"`

	// Timestamp is the server side creation time in milliseconds.
	Timestamp int64 `json:"timestamp"`

	Chunks  int    `json:"chunks,omitempty"`
	Region  string `json:"region,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
	Version int    `json:"version,omitempty"`

	SharerEmail   string `json:"sharerEmail,omitempty"`
	ReceiverEmail string `json:"receiverEmail,omitempty"`
}

// IsFolder reports whether the item is a folder.
func (d DecodedItem) IsFolder() bool {
	return d.Type == ItemFolder
}

// ListingContext tells the decoder where a listing came from. LinkKey is
// required for [SourceLink] listings and ignored otherwise.
type ListingContext struct {
	Source  ListingSource
	LinkKey string
}
