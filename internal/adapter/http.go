package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

const (
	pathAuthInfo       = "/v3/auth/info"
	pathRegister       = "/v3/register"
	pathLogin          = "/v3/login"
	pathMasterKeys     = "/v3/user/masterKeys"
	pathKeyPairInfo    = "/v3/user/keyPair/info"
	pathKeyPairSet     = "/v3/user/keyPair/set"
	pathKeyPairUpdate  = "/v3/user/keyPair/update"
	pathPasswordChange = "/v3/user/settings/password/change"
	pathPublicKey      = "/v3/user/publicKey"
	pathDirContent     = "/v3/dir/content"
	pathSharedIn       = "/v3/shared/in"
	pathSharedOut      = "/v3/shared/out"
	pathLinkInfo       = "/v3/dir/link/info"
	pathLinkContent    = "/v3/dir/link/content"
	pathLinkStatus     = "/v3/dir/link/status"
	pathLinkAdd        = "/v3/dir/link/add"
	pathLinkEdit       = "/v3/dir/link/edit"
	pathLinkRemove     = "/v3/dir/link/remove"
	pathItemLinked     = "/v3/item/linked"
	pathItemLinkRename = "/v3/item/linked/rename"
	pathItemShare      = "/v3/item/share"
	pathFileMetadata   = "/v3/file/metadata"
	pathDirRename      = "/v3/dir/rename"
	pathUploadDone     = "/v3/upload/done"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	apiKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetAPIKey implements [ServerAdapter].
func (h *httpServerAdapter) SetAPIKey(apiKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.apiKey = strings.TrimSpace(apiKey)
}

// APIKey implements [ServerAdapter].
func (h *httpServerAdapter) APIKey() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.apiKey
}

// post sends body to path and decodes the envelope payload into out.
func (h *httpServerAdapter) post(ctx context.Context, path string, body, out any) error {
	req := h.client.R().SetContext(ctx)
	if apiKey := h.APIKey(); apiKey != "" {
		req.SetAuthToken(apiKey)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.post").Str("path", path).Msg("request failed")
		return fmt.Errorf("request %s: %w", path, err)
	}

	if err = decodeEnvelope(resp, out); err != nil {
		h.logger.Debug().Err(err).
			Str("func", "httpServerAdapter.post").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("request rejected")
		return err
	}
	return nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, out any) error {
	req := h.client.R().SetContext(ctx)
	if apiKey := h.APIKey(); apiKey != "" {
		req.SetAuthToken(apiKey)
	}

	resp, err := req.Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.get").Str("path", path).Msg("request failed")
		return fmt.Errorf("request %s: %w", path, err)
	}
	return decodeEnvelope(resp, out)
}

func (h *httpServerAdapter) AuthInfo(ctx context.Context, email string) (models.AuthInfo, error) {
	var info models.AuthInfo
	if err := h.post(ctx, pathAuthInfo, models.AuthInfoRequest{Email: email}, &info); err != nil {
		return models.AuthInfo{}, fmt.Errorf("auth info: %w", err)
	}
	return info, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := h.post(ctx, pathRegister, req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login implements [ServerAdapter]. On success the returned API key is
// stored via SetAPIKey.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := h.post(ctx, pathLogin, req, &resp); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	if resp.APIKey == "" {
		return models.LoginResponse{}, fmt.Errorf("login: %w: empty api key", ErrUnexpectedResponse)
	}

	h.SetAPIKey(resp.APIKey)
	return resp, nil
}

func (h *httpServerAdapter) MasterKeys(ctx context.Context, encryptedRing string) (models.MasterKeysResponse, error) {
	var resp models.MasterKeysResponse
	if err := h.post(ctx, pathMasterKeys, models.MasterKeysRequest{MasterKeys: encryptedRing}, &resp); err != nil {
		return models.MasterKeysResponse{}, fmt.Errorf("master keys: %w", err)
	}
	return resp, nil
}

func (h *httpServerAdapter) KeyPairInfo(ctx context.Context) (models.KeyPairInfo, error) {
	var info models.KeyPairInfo
	if err := h.get(ctx, pathKeyPairInfo, &info); err != nil {
		return models.KeyPairInfo{}, fmt.Errorf("key pair info: %w", err)
	}
	return info, nil
}

func (h *httpServerAdapter) SetKeyPair(ctx context.Context, req models.KeyPairRequest) error {
	if err := h.post(ctx, pathKeyPairSet, req, nil); err != nil {
		return fmt.Errorf("set key pair: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) UpdateKeyPair(ctx context.Context, req models.KeyPairRequest) error {
	if err := h.post(ctx, pathKeyPairUpdate, req, nil); err != nil {
		return fmt.Errorf("update key pair: %w", err)
	}
	return nil
}

// ChangePassword implements [ServerAdapter]. The old API key stops working
// once the server acknowledges, so the new one is stored immediately.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error) {
	var resp models.ChangePasswordResponse
	if err := h.post(ctx, pathPasswordChange, req, &resp); err != nil {
		return models.ChangePasswordResponse{}, fmt.Errorf("change password: %w", err)
	}
	if resp.NewAPIKey != "" {
		h.SetAPIKey(resp.NewAPIKey)
	}
	return resp, nil
}

func (h *httpServerAdapter) PublicKey(ctx context.Context, email string) (string, error) {
	var resp models.PublicKeyResponse
	if err := h.post(ctx, pathPublicKey, models.PublicKeyRequest{Email: email}, &resp); err != nil {
		return "", fmt.Errorf("public key: %w", err)
	}
	return resp.PublicKey, nil
}

func (h *httpServerAdapter) FolderContent(ctx context.Context, folderUUID string) (models.FolderContent, error) {
	var content models.FolderContent
	if err := h.post(ctx, pathDirContent, models.ContentRequest{UUID: folderUUID}, &content); err != nil {
		return models.FolderContent{}, fmt.Errorf("folder content: %w", err)
	}
	return content, nil
}

func (h *httpServerAdapter) SharedIn(ctx context.Context, folderUUID string) (models.FolderContent, error) {
	var content models.FolderContent
	if err := h.post(ctx, pathSharedIn, models.ContentRequest{UUID: folderUUID}, &content); err != nil {
		return models.FolderContent{}, fmt.Errorf("shared in: %w", err)
	}
	return content, nil
}

func (h *httpServerAdapter) SharedOut(ctx context.Context, folderUUID string) (models.FolderContent, error) {
	var content models.FolderContent
	if err := h.post(ctx, pathSharedOut, models.ContentRequest{UUID: folderUUID}, &content); err != nil {
		return models.FolderContent{}, fmt.Errorf("shared out: %w", err)
	}
	return content, nil
}

func (h *httpServerAdapter) Recents(ctx context.Context) (models.FolderContent, error) {
	return h.FolderContent(ctx, models.RecentsFolder)
}

func (h *httpServerAdapter) Trash(ctx context.Context) (models.FolderContent, error) {
	return h.FolderContent(ctx, models.TrashFolder)
}

func (h *httpServerAdapter) LinkInfo(ctx context.Context, linkUUID string) (models.LinkInfo, error) {
	var info models.LinkInfo
	if err := h.post(ctx, pathLinkInfo, models.LinkInfoRequest{UUID: linkUUID}, &info); err != nil {
		return models.LinkInfo{}, fmt.Errorf("link info: %w", err)
	}
	return info, nil
}

// LinkDirContent implements [ServerAdapter]. Link listings name their files
// "files" instead of "uploads".
func (h *httpServerAdapter) LinkDirContent(ctx context.Context, req models.LinkContentRequest) (models.FolderContent, error) {
	var content models.LinkFolderContent
	if err := h.post(ctx, pathLinkContent, req, &content); err != nil {
		return models.FolderContent{}, fmt.Errorf("link content: %w", err)
	}
	return content.Content(), nil
}

func (h *httpServerAdapter) LinkStatus(ctx context.Context, folderUUID string) (models.LinkStatus, error) {
	var status models.LinkStatus
	if err := h.post(ctx, pathLinkStatus, models.LinkInfoRequest{UUID: folderUUID}, &status); err != nil {
		return models.LinkStatus{}, fmt.Errorf("link status: %w", err)
	}
	return status, nil
}

func (h *httpServerAdapter) AddItemToLink(ctx context.Context, req models.LinkAddRequest) error {
	if err := h.post(ctx, pathLinkAdd, req, nil); err != nil {
		return fmt.Errorf("add item to link: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) EditLink(ctx context.Context, req models.LinkEditRequest) error {
	if err := h.post(ctx, pathLinkEdit, req, nil); err != nil {
		return fmt.Errorf("edit link: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) DisableLink(ctx context.Context, linkUUID string) error {
	if err := h.post(ctx, pathLinkRemove, models.LinkDisableRequest{UUID: linkUUID}, nil); err != nil {
		return fmt.Errorf("disable link: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ItemLinks(ctx context.Context, itemUUID string) ([]models.ItemLink, error) {
	var resp models.ItemLinksResponse
	if err := h.post(ctx, pathItemLinked, models.ItemLinksRequest{UUID: itemUUID}, &resp); err != nil {
		return nil, fmt.Errorf("item links: %w", err)
	}
	return resp.Links, nil
}

func (h *httpServerAdapter) RenameInLink(ctx context.Context, req models.LinkRenameRequest) error {
	if err := h.post(ctx, pathItemLinkRename, req, nil); err != nil {
		return fmt.Errorf("rename in link: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ShareItem(ctx context.Context, req models.ShareRequest) error {
	if err := h.post(ctx, pathItemShare, req, nil); err != nil {
		return fmt.Errorf("share item: %w", err)
	}
	return nil
}

// RenameItem implements [ServerAdapter]. Files and folders use different
// endpoints.
func (h *httpServerAdapter) RenameItem(ctx context.Context, req models.RenameRequest) error {
	path := pathFileMetadata
	if req.Type == models.ItemFolder {
		path = pathDirRename
	}
	if err := h.post(ctx, path, req, nil); err != nil {
		return fmt.Errorf("rename item: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) MarkUploadDone(ctx context.Context, req models.UploadDoneRequest) error {
	if err := h.post(ctx, pathUploadDone, req, nil); err != nil {
		return fmt.Errorf("upload done: %w", err)
	}
	return nil
}
