package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"agendamento/internal/repository"
	"agendamento/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetLexicon(t *testing.T) {
	lexicon, err := repository.NewLexiconRepository("")
	require.NoError(t, err)
	h := NewAdminHandler(lexicon)

	rec := httptest.NewRecorder()
	h.GetLexicon(rec, httptest.NewRequest(http.MethodGet, "/admin/lexicon", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got LexiconResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Masculine, "luca")
	assert.Contains(t, got.Feminine, "raquel")
}

func TestReloadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"feminine":[]}`), 0o644))

	lexicon, err := repository.NewLexiconRepository(path)
	require.NoError(t, err)
	h := NewAdminHandler(lexicon)

	require.NoError(t, os.WriteFile(path, []byte(`{"feminine":["noa"]}`), 0o644))

	rec := httptest.NewRecorder()
	h.ReloadLexicon(rec, httptest.NewRequest(http.MethodPost, "/admin/lexicon/reload", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got LexiconReloadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Léxico recarregado.", got.Message)
	assert.Equal(t, "F", lexicon.Lookup("noa"))
}

func TestReloadLexiconFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	lexicon, err := repository.NewLexiconRepository(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	h := NewAdminHandler(lexicon)
	rec := httptest.NewRecorder()
	h.ReloadLexicon(rec, httptest.NewRequest(http.MethodPost, "/admin/lexicon/reload", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.DefaultCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "test-secret")

	h := NewAdminAuthHandler(service.NewAdminAuthService())

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		return rec
	}

	t.Run("valid credentials", func(t *testing.T) {
		rec := login(`{"email":"admin@example.com","password":"s3nha-forte"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var got LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := login(`{"email":"admin@example.com","password":"errada"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := login(`{"email":"outro@example.com","password":"s3nha-forte"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := login(`{{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
