package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/models"
)

type backendUser struct {
	models.User
	salts models.Salts
	hash  string
}

// fakeBackend is an in-memory stand-in for the vault server. It stores
// whatever the client sends and never sees a plaintext secret.
type fakeBackend struct {
	t  *testing.T
	mu sync.Mutex

	users       map[string]*backendUser
	credentials map[int64]models.Credential
	categories  map[int64]models.Category
	shares      []models.SharedCredential
	nextID      int64
}

func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	b := &fakeBackend{
		t:           t,
		users:       map[string]*backendUser{},
		credentials: map[int64]models.Credential{},
		categories:  map[int64]models.Category{},
	}

	r := chi.NewRouter()
	r.Get("/auth/salts", b.salts)
	r.Post("/auth/register", b.register)
	r.Post("/auth/login", b.login)
	r.Group(func(r chi.Router) {
		r.Use(b.authenticate)
		r.Get("/users/me", b.me)
		r.Get("/users/me/stats", b.stats)
		r.Get("/categories/", b.listCategories)
		r.Post("/categories/", b.createCategory)
		r.Put("/users/keys", b.uploadKeys)
		r.Post("/credentials/", b.createCredential)
		r.Get("/credentials/", b.listCredentials)
		r.Get("/credentials/{id}", b.getCredential)
		r.Get("/api/sharing/users/{id}/public-key", b.publicKey)
		r.Post("/api/sharing/share", b.share)
		r.Get("/api/sharing/received", b.received)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func (b *fakeBackend) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(b.t, json.NewEncoder(w).Encode(v))
}

func (b *fakeBackend) detail(w http.ResponseWriter, status int, detail string) {
	b.write(w, status, map[string]string{"detail": detail})
}

func (b *fakeBackend) id() int64 {
	b.nextID++
	return b.nextID
}

type userKey struct{}

func contextWithUser(r *http.Request, u *backendUser) context.Context {
	return context.WithValue(r.Context(), userKey{}, u)
}

func userFrom(r *http.Request) *backendUser {
	return r.Context().Value(userKey{}).(*backendUser)
}

func (b *fakeBackend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer tok-")
		b.mu.Lock()
		u, ok := b.users[name]
		b.mu.Unlock()
		if !ok {
			b.detail(w, http.StatusUnauthorized, adapter.DetailCouldNotValidate)
			return
		}
		next.ServeHTTP(w, r.WithContext(contextWithUser(r, u)))
	})
}

func (b *fakeBackend) salts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[r.URL.Query().Get("username")]
	if !ok {
		b.detail(w, http.StatusNotFound, adapter.DetailUserNotFound)
		return
	}
	b.write(w, http.StatusOK, u.salts)
}

func (b *fakeBackend) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	assert.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.users[req.Username]; ok {
		b.detail(w, http.StatusBadRequest, adapter.DetailUsernameTaken)
		return
	}
	u := &backendUser{
		User:  models.User{ID: b.id(), Username: req.Username},
		salts: models.Salts{LoginSalt: req.LoginSalt, EncryptionSalt: req.EncryptionSalt},
		hash:  req.LoginPasswordHash,
	}
	b.users[req.Username] = u
	b.write(w, http.StatusCreated, u.User)
}

func (b *fakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	assert.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))

	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[req.Username]
	if !ok || u.hash != req.LoginPasswordHash {
		b.detail(w, http.StatusUnauthorized, adapter.DetailIncorrectCredentials)
		return
	}
	b.write(w, http.StatusOK, models.Token{AccessToken: "tok-" + u.Username, TokenType: "bearer"})
}

func (b *fakeBackend) me(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.write(w, http.StatusOK, userFrom(r).User)
}

func (b *fakeBackend) uploadKeys(w http.ResponseWriter, r *http.Request) {
	var keys models.UserKeys
	assert.NoError(b.t, json.NewDecoder(r.Body).Decode(&keys))

	b.mu.Lock()
	defer b.mu.Unlock()
	u := userFrom(r)
	u.PublicKey = keys.PublicKey
	u.EncryptedPrivateKey = keys.EncryptedPrivateKey
	b.write(w, http.StatusOK, u.User)
}

func (b *fakeBackend) createCredential(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialCreate
	assert.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))

	b.mu.Lock()
	defer b.mu.Unlock()
	c := models.Credential{
		ID:            b.id(),
		UserID:        userFrom(r).ID,
		Title:         req.Title,
		Username:      req.Username,
		URL:           req.URL,
		EncryptedData: req.EncryptedData,
		EncryptionIV:  req.EncryptionIV,
	}
	b.credentials[c.ID] = c
	b.write(w, http.StatusCreated, c)
}

func (b *fakeBackend) ownedCredential(w http.ResponseWriter, r *http.Request, raw string) (models.Credential, bool) {
	id, _ := strconv.ParseInt(raw, 10, 64)
	c, ok := b.credentials[id]
	if !ok {
		b.detail(w, http.StatusNotFound, "Credential not found")
		return models.Credential{}, false
	}
	if c.UserID != userFrom(r).ID {
		b.detail(w, http.StatusForbidden, adapter.DetailInsufficientPermissions)
		return models.Credential{}, false
	}
	return c, true
}

func (b *fakeBackend) getCredential(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.ownedCredential(w, r, chi.URLParam(r, "id")); ok {
		b.write(w, http.StatusOK, c)
	}
}

func (b *fakeBackend) listCredentials(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := models.CredentialList{Items: []models.Credential{}}
	for _, c := range b.credentials {
		if c.UserID == userFrom(r).ID {
			list.Items = append(list.Items, c)
		}
	}
	list.Total = len(list.Items)
	b.write(w, http.StatusOK, list)
}

func (b *fakeBackend) userByID(id int64) (*backendUser, bool) {
	for _, u := range b.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (b *fakeBackend) publicKey(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	u, ok := b.userByID(id)
	if !ok || u.PublicKey == "" {
		b.detail(w, http.StatusNotFound, adapter.DetailPublicKeyNotFound)
		return
	}
	b.write(w, http.StatusOK, models.UserPublicKey{UserID: u.ID, Username: u.Username, PublicKey: u.PublicKey})
}

func (b *fakeBackend) share(w http.ResponseWriter, r *http.Request) {
	var req models.SharedCredentialCreate
	assert.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))

	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.ownedCredential(w, r, strconv.FormatInt(req.CredentialID, 10))
	if !ok {
		return
	}
	for _, s := range b.shares {
		if s.CredentialID == req.CredentialID && s.RecipientUserID == req.RecipientUserID {
			b.detail(w, http.StatusBadRequest, adapter.DetailAlreadyShared)
			return
		}
	}
	owner := userFrom(r)
	shared := models.SharedCredential{
		ID:              b.id(),
		CredentialID:    c.ID,
		OwnerUserID:     owner.ID,
		RecipientUserID: req.RecipientUserID,
		OwnerUsername:   owner.Username,
		CredentialTitle: c.Title,
		Title:           c.Title,
		Username:        c.Username,
		URL:             c.URL,
		SharingEnvelope: req.SharingEnvelope,
	}
	b.shares = append(b.shares, shared)
	b.write(w, http.StatusCreated, shared)
}

func (b *fakeBackend) received(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := models.SharedCredentialList{Items: []models.SharedCredential{}}
	for _, s := range b.shares {
		if s.RecipientUserID == userFrom(r).ID {
			list.Items = append(list.Items, s)
		}
	}
	list.Total = len(list.Items)
	b.write(w, http.StatusOK, list)
}

func (b *fakeBackend) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryWrite
	assert.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))

	b.mu.Lock()
	defer b.mu.Unlock()
	c := models.Category{ID: b.id(), UserID: userFrom(r).ID, Name: *req.Name, ColorHex: req.ColorHex}
	b.categories[c.ID] = c
	b.write(w, http.StatusOK, c)
}

func (b *fakeBackend) listCategories(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := []models.Category{}
	for _, c := range b.categories {
		if c.UserID == userFrom(r).ID {
			list = append(list, c)
		}
	}
	b.write(w, http.StatusOK, list)
}

func (b *fakeBackend) stats(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	me := userFrom(r).ID
	var stats models.UserStats
	for _, c := range b.credentials {
		if c.UserID == me {
			stats.OwnCredentials++
		}
	}
	for _, s := range b.shares {
		if s.RecipientUserID == me {
			stats.SharedCredentials++
		}
	}
	for _, c := range b.categories {
		if c.UserID == me {
			stats.Categories++
		}
	}
	b.write(w, http.StatusOK, stats)
}
