// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-keeper/internal/app"
	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, ok bool, code, message string, data any) {
	t.Helper()
	env := map[string]any{"status": ok, "message": message, "code": code}
	if data != nil {
		env["data"] = data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "gateway.example.com", want: "https://gateway.example.com"},
		{in: "http://127.0.0.1:8080/", want: "http://127.0.0.1:8080"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestAuthInfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, pathAuthInfo, r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.AuthInfoRequest
		decodeBody(t, r, &req)
		assert.Equal(t, "alice@example.com", req.Email)

		writeEnvelope(t, w, http.StatusOK, true, "", "", models.AuthInfo{AuthVersion: 2, Salt: "salt", ID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.AuthInfo(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.AuthInfo{AuthVersion: 2, Salt: "salt", ID: 7}, info)
}

func TestLogin_StoresAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathLogin, r.URL.Path)

		var req models.LoginRequest
		decodeBody(t, r, &req)
		assert.Equal(t, "derived-secret", req.Password)
		assert.Equal(t, 2, req.AuthVersion)

		writeEnvelope(t, w, http.StatusOK, true, "", "", models.LoginResponse{APIKey: "api-key", MasterKeys: "002enc"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "derived-secret", AuthVersion: 2})

	require.NoError(t, err)
	assert.Equal(t, "002enc", resp.MasterKeys)
	assert.Equal(t, "api-key", a.APIKey())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, app.CodeEmailOrPasswordWrong, "Invalid email address or password.", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, app.CodeEmailOrPasswordWrong, apiErr.Code)
	assert.False(t, errors.Is(err, ErrSessionInvalid))
	assert.Empty(t, a.APIKey())
}

func TestLogin_EmptyAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, true, "", "", models.LoginResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestRegister_EmailInUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathRegister, r.URL.Path)
		writeEnvelope(t, w, http.StatusConflict, false, app.CodeEmailAddressInUse, "in use", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Email: "a@b.c"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

// ── session handling ────────────────────────────────────────────────────────

func TestAuthorizedRequest_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-key", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodGet, r.Method)
		writeEnvelope(t, w, http.StatusOK, true, "", "", models.KeyPairInfo{PublicKey: "pub", PrivateKey: "002priv"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetAPIKey("  my-key ")

	info, err := a.KeyPairInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pub", info.PublicKey)
}

func TestSessionInvalid_FromCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, app.CodeAPIKeyNotFound, "API key not found.", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FolderContent(context.Background(), "root")

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionInvalid_FromStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("unauthorized"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.MasterKeys(context.Background(), "002ring")

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestNonEnvelopeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ShareItem(context.Background(), models.ShareRequest{UUID: "u"})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGarbageOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PublicKey(context.Background(), "bob@example.com")

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

// ── keys ────────────────────────────────────────────────────────────────────

func TestChangePassword_SwitchesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathPasswordChange, r.URL.Path)
		assert.Equal(t, "Bearer old-key", r.Header.Get("Authorization"))

		var req models.ChangePasswordRequest
		decodeBody(t, r, &req)
		assert.Equal(t, "new-salt", req.Salt)
		assert.Equal(t, "002ring", req.MasterKeys)

		writeEnvelope(t, w, http.StatusOK, true, "", "", models.ChangePasswordResponse{NewAPIKey: "new-key"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetAPIKey("old-key")

	resp, err := a.ChangePassword(context.Background(), models.ChangePasswordRequest{Salt: "new-salt", MasterKeys: "002ring"})
	require.NoError(t, err)
	assert.Equal(t, "new-key", resp.NewAPIKey)
	assert.Equal(t, "new-key", a.APIKey())
}

func TestMasterKeys_ReturnsServerCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.MasterKeysRequest
		decodeBody(t, r, &req)
		assert.Equal(t, "002local", req.MasterKeys)
		writeEnvelope(t, w, http.StatusOK, true, "", "", models.MasterKeysResponse{Keys: "002server"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.MasterKeys(context.Background(), "002local")

	require.NoError(t, err)
	assert.Equal(t, "002server", resp.Keys)
}

// ── listings ────────────────────────────────────────────────────────────────

func TestFolderContent_DecodesUploads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ContentRequest
		decodeBody(t, r, &req)

		switch r.URL.Path {
		case pathDirContent:
			writeEnvelope(t, w, http.StatusOK, true, "", "", map[string]any{
				"uploads": []map[string]any{{"uuid": "f1", "metadata": "002m", "parent": req.UUID, "timestamp": 1700000000}},
				"folders": []map[string]any{{"uuid": "d1", "name": "002n", "parent": req.UUID}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	content, err := a.FolderContent(context.Background(), "root")

	require.NoError(t, err)
	require.Len(t, content.Files, 1)
	require.Len(t, content.Folders, 1)
	assert.Equal(t, "f1", content.Files[0].UUID)
	assert.Equal(t, "002n", content.Folders[0].EncryptedName())
}

func TestRecentsAndTrash_UseSpecialFolders(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ContentRequest
		decodeBody(t, r, &req)
		seen = append(seen, req.UUID)
		writeEnvelope(t, w, http.StatusOK, true, "", "", models.FolderContent{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Recents(context.Background())
	require.NoError(t, err)
	_, err = a.Trash(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{models.RecentsFolder, models.TrashFolder}, seen)
}

func TestLinkDirContent_DecodesFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathLinkContent, r.URL.Path)

		var req models.LinkContentRequest
		decodeBody(t, r, &req)
		assert.Equal(t, "hashed", req.Password)

		writeEnvelope(t, w, http.StatusOK, true, "", "", map[string]any{
			"files": []map[string]any{{"uuid": "f1", "metadata": "002m"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	content, err := a.LinkDirContent(context.Background(), models.LinkContentRequest{UUID: "l", Parent: "p", Password: "hashed"})

	require.NoError(t, err)
	require.Len(t, content.Files, 1)
	assert.Equal(t, "f1", content.Files[0].UUID)
}

// ── items ───────────────────────────────────────────────────────────────────

func TestRenameItem_RoutesByType(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)

		var raw map[string]any
		decodeBody(t, r, &raw)
		_, hasType := raw["type"]
		assert.False(t, hasType)

		writeEnvelope(t, w, http.StatusOK, true, "", "", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.RenameItem(context.Background(), models.RenameRequest{UUID: "f", Type: models.ItemFile}))
	require.NoError(t, a.RenameItem(context.Background(), models.RenameRequest{UUID: "d", Type: models.ItemFolder}))

	assert.Equal(t, []string{pathFileMetadata, pathDirRename}, paths)
}

func TestMarkUploadDone_NotReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, app.CodeUploadNotFinished, "upload not finished yet", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.MarkUploadDone(context.Background(), models.UploadDoneRequest{UUID: "u"})

	assert.ErrorIs(t, err, ErrUploadNotReady)
}

func TestItemLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathItemLinked, r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, true, "", "", models.ItemLinksResponse{
			Link:  true,
			Links: []models.ItemLink{{LinkUUID: "l1", LinkKey: "002k"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	links, err := a.ItemLinks(context.Background(), "item")

	require.NoError(t, err)
	assert.Equal(t, []models.ItemLink{{LinkUUID: "l1", LinkKey: "002k"}}, links)
}

func TestPublicKey_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, app.CodeUserNotFound, "user not found", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.PublicKey(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, true, "", "", nil)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	err := a.DisableLink(ctx, "l")

	assert.ErrorIs(t, err, context.Canceled)
}
