package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-owl/internal/config"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/utils"
	"github.com/MKhiriev/go-pass-owl/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Every request carries an X-Request-ID from ids.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, ids utils.IDGenerator, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(ids)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: log.Component("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// SetToken implements [CredentialSetter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CredentialSetter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ── auth ─────────────────────────────────────────────────────────────────────

// Salts implements [AuthAdapter] via GET /auth/salts?username=.
func (h *httpServerAdapter) Salts(ctx context.Context, username string) (models.Salts, error) {
	var salts models.Salts

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("username", strings.TrimSpace(username)).
		SetResult(&salts).
		Get("/auth/salts")
	if err != nil {
		return models.Salts{}, fmt.Errorf("salts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Salts{}, err
	}

	return salts, nil
}

// Register implements [AuthAdapter] via POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [AuthAdapter] via POST /auth/login. On success the
// returned access token is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}
	if token.AccessToken == "" {
		return models.Token{}, fmt.Errorf("login: empty access token")
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// CurrentUser implements [AuthAdapter] via GET /users/me.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.getJSON(ctx, "/users/me", nil, &user)
	return user, err
}

// UploadKeys implements [AuthAdapter] via PUT /users/keys.
func (h *httpServerAdapter) UploadKeys(ctx context.Context, keys models.UserKeys) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(keys).
		Put("/users/keys")
	if err != nil {
		return fmt.Errorf("upload keys request: %w", err)
	}

	return mapHTTPError(resp)
}

// UserStats implements [AuthAdapter] via GET /users/me/stats.
func (h *httpServerAdapter) UserStats(ctx context.Context) (models.UserStats, error) {
	var stats models.UserStats
	err := h.getJSON(ctx, "/users/me/stats", nil, &stats)
	return stats, err
}

// ── credentials ──────────────────────────────────────────────────────────────

func (h *httpServerAdapter) CreateCredential(ctx context.Context, req models.CredentialCreate) (models.Credential, error) {
	var out models.Credential
	err := h.sendJSON(ctx, resty.MethodPost, "/credentials/", req, &out)
	return out, err
}

func (h *httpServerAdapter) GetCredential(ctx context.Context, id int64) (models.Credential, error) {
	var out models.Credential
	err := h.getJSON(ctx, "/credentials/"+idPath(id), nil, &out)
	return out, err
}

func (h *httpServerAdapter) ListCredentials(ctx context.Context, params models.ListParams) (models.CredentialList, error) {
	var out models.CredentialList
	err := h.getJSON(ctx, "/credentials/", pageQuery(params), &out)
	return out, err
}

func (h *httpServerAdapter) UpdateCredential(ctx context.Context, id int64, req models.CredentialUpdate) (models.Credential, error) {
	var out models.Credential
	err := h.sendJSON(ctx, resty.MethodPut, "/credentials/"+idPath(id), req, &out)
	return out, err
}

func (h *httpServerAdapter) DeleteCredential(ctx context.Context, id int64) error {
	return h.delete(ctx, "/credentials/"+idPath(id))
}

// ── secure notes ─────────────────────────────────────────────────────────────

func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.SecureNoteWrite) (models.SecureNote, error) {
	var out models.SecureNote
	err := h.sendJSON(ctx, resty.MethodPost, "/secure-notes/", req, &out)
	return out, err
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.SecureNote, error) {
	var out models.SecureNote
	err := h.getJSON(ctx, "/secure-notes/"+idPath(id), nil, &out)
	return out, err
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, params models.ListParams) (models.SecureNoteList, error) {
	var out models.SecureNoteList
	err := h.getJSON(ctx, "/secure-notes/", pageQuery(params), &out)
	return out, err
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id int64, req models.SecureNoteWrite) (models.SecureNote, error) {
	var out models.SecureNote
	err := h.sendJSON(ctx, resty.MethodPut, "/secure-notes/"+idPath(id), req, &out)
	return out, err
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	return h.delete(ctx, "/secure-notes/"+idPath(id))
}

// ── categories ───────────────────────────────────────────────────────────────

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := h.getJSON(ctx, "/categories/", nil, &out)
	return out, err
}

func (h *httpServerAdapter) CreateCategory(ctx context.Context, req models.CategoryWrite) (models.Category, error) {
	var out models.Category
	err := h.sendJSON(ctx, resty.MethodPost, "/categories/", req, &out)
	return out, err
}

func (h *httpServerAdapter) UpdateCategory(ctx context.Context, id int64, req models.CategoryWrite) (models.Category, error) {
	var out models.Category
	err := h.sendJSON(ctx, resty.MethodPut, "/categories/"+idPath(id), req, &out)
	return out, err
}

func (h *httpServerAdapter) DeleteCategory(ctx context.Context, id int64) error {
	return h.delete(ctx, "/categories/"+idPath(id))
}

// ── sharing ──────────────────────────────────────────────────────────────────

// Share implements [SharingAdapter] via POST /api/sharing/share.
func (h *httpServerAdapter) Share(ctx context.Context, req models.SharedCredentialCreate) (models.SharedCredential, error) {
	var out models.SharedCredential
	err := h.sendJSON(ctx, resty.MethodPost, "/api/sharing/share", req, &out)
	return out, err
}

func (h *httpServerAdapter) ListReceived(ctx context.Context, params models.ListParams) (models.SharedCredentialList, error) {
	var out models.SharedCredentialList
	err := h.getJSON(ctx, "/api/sharing/received", pageQuery(params), &out)
	return out, err
}

func (h *httpServerAdapter) ListOwned(ctx context.Context) ([]models.SharedCredential, error) {
	var out []models.SharedCredential
	err := h.getJSON(ctx, "/api/sharing/owned", nil, &out)
	return out, err
}

func (h *httpServerAdapter) Unshare(ctx context.Context, sharedID int64) error {
	return h.delete(ctx, "/api/sharing/"+idPath(sharedID))
}

func (h *httpServerAdapter) SharedUsers(ctx context.Context, credentialID int64) ([]models.SharedUser, error) {
	var out []models.SharedUser
	err := h.getJSON(ctx, "/api/sharing/credential/"+idPath(credentialID)+"/users", nil, &out)
	return out, err
}

// UpdateShare implements [SharingAdapter] via
// PUT /api/sharing/credential/{credential_id}/user/{user_id}.
func (h *httpServerAdapter) UpdateShare(ctx context.Context, credentialID, recipientID int64, envelope models.SharingEnvelope) (models.SharedCredential, error) {
	var out models.SharedCredential
	path := "/api/sharing/credential/" + idPath(credentialID) + "/user/" + idPath(recipientID)
	err := h.sendJSON(ctx, resty.MethodPut, path, envelope, &out)
	return out, err
}

// RevokeRecipient implements [SharingAdapter] via
// DELETE /api/sharing/credential/{credential_id}/user/{user_id}.
func (h *httpServerAdapter) RevokeRecipient(ctx context.Context, credentialID, recipientID int64) error {
	return h.delete(ctx, "/api/sharing/credential/"+idPath(credentialID)+"/user/"+idPath(recipientID))
}

// PublicKey implements [SharingAdapter] via
// GET /api/sharing/users/{user_id}/public-key.
func (h *httpServerAdapter) PublicKey(ctx context.Context, userID int64) (models.UserPublicKey, error) {
	var out models.UserPublicKey
	err := h.getJSON(ctx, "/api/sharing/users/"+idPath(userID)+"/public-key", nil, &out)
	return out, err
}

func (h *httpServerAdapter) SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error) {
	var out []models.UserSearchResult
	err := h.getJSON(ctx, "/api/sharing/users/search", map[string]string{"q": query}, &out)
	return out, err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(query).
		SetResult(out).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) sendJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) delete(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	h.logger.Debug().Str("path", path).Msg("deleted")
	return nil
}

func idPath(id int64) string {
	return strconv.FormatInt(id, 10)
}

func pageQuery(p models.ListParams) map[string]string {
	q := map[string]string{}
	if p.Skip > 0 {
		q["skip"] = strconv.Itoa(p.Skip)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}
