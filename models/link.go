package models

// Link password markers sent with a link edit.
const (
	LinkPasswordSet   = "notempty"
	LinkPasswordUnset = "empty"
)

// LinkSettings is what the owner chooses when editing a public link.
type LinkSettings struct {
	// Password protects the link. Empty disables protection.
	Password string
	// Expiration is one of the server presets, e.g. "never", "1d", "30d".
	Expiration string
	// DownloadButton shows the download button to visitors.
	DownloadButton bool
}

// LinkInfo is the public description of a folder link.
type LinkInfo struct {
	UUID           string `json:"uuid"`
	Parent         string `json:"parent"`
	Metadata       string `json:"metadata"`
	HasPassword    bool   `json:"hasPassword"`
	Salt           string `json:"salt"`
	DownloadButton bool   `json:"downloadBtn"`
	Expiration     int64  `json:"expiration"`
}

// LinkStatus is the owner view of a folder link. Key is the link key
// encrypted under a master key.
type LinkStatus struct {
	Exists bool   `json:"exists"`
	UUID   string `json:"uuid"`
	Key    string `json:"key"`
}

type LinkInfoRequest struct {
	UUID string `json:"uuid"`
}

// LinkContentRequest lists a folder below a public link. Password is the
// hashed link password or the hash of "empty".
type LinkContentRequest struct {
	UUID     string `json:"uuid"`
	Parent   string `json:"parent"`
	Password string `json:"password"`
}

// LinkAddRequest adds one item of a folder tree to a link. Metadata is
// encrypted under the link key; Key is the link key encrypted under the
// owner's newest master key.
type LinkAddRequest struct {
	UUID       string   `json:"uuid"`
	Parent     string   `json:"parent"`
	LinkUUID   string   `json:"linkUUID"`
	Type       ItemType `json:"type"`
	Metadata   string   `json:"metadata"`
	Key        string   `json:"key"`
	Expiration string   `json:"expiration"`
}

// LinkEditRequest changes the settings of a link. Salt is minted anew on
// every edit.
type LinkEditRequest struct {
	UUID           string `json:"uuid"`
	Expiration     string `json:"expiration"`
	Password       string `json:"password"`
	PasswordHashed string `json:"passwordHashed"`
	Salt           string `json:"salt"`
	DownloadButton bool   `json:"downloadBtn"`
}

type LinkDisableRequest struct {
	UUID string `json:"uuid"`
}

// LinkedItem is a folder tree entry that should be added to a new link.
type LinkedItem struct {
	Item DecodedItem
	// Parent is the parent inside the link. The link root uses "base".
	Parent string
}

// LinkRootParent is the parent identifier of the root item of a link.
const LinkRootParent = "base"

// FolderLink is the result of creating a folder link.
type FolderLink struct {
	LinkUUID string
	// Key is the plaintext link key, shared with visitors in the URL fragment.
	Key string
}

// ItemLink is a link an item belongs to. LinkKey is encrypted under a
// master key of the owner.
type ItemLink struct {
	LinkUUID string `json:"linkUUID"`
	LinkKey  string `json:"linkKey"`
}

type ItemLinksRequest struct {
	UUID string `json:"uuid"`
}

type ItemLinksResponse struct {
	Link  bool       `json:"link"`
	Links []ItemLink `json:"links"`
}

// LinkRenameRequest stores item metadata re-encrypted under a link key.
type LinkRenameRequest struct {
	UUID     string `json:"uuid"`
	LinkUUID string `json:"linkUUID"`
	Metadata string `json:"metadata"`
}
