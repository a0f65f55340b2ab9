package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/auth"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/bouquet"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/config"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/store"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/upload"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{PublicBaseURL: "http://localhost:5000"},
		Auth:   config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1},
		Upload: config.UploadConfig{MaxBytes: 1024}, // small cap so tests stay cheap
	}

	mem := store.NewMemoryStore()
	tokens := common.NewTokenManager(cfg.Auth.JWTSecret, time.Hour)
	authSvc := auth.NewService(mem, tokens)
	bouquetSvc := bouquet.NewService(mem)

	files, err := upload.NewDiskStore(t.TempDir(), cfg.Upload.MaxBytes)
	require.NoError(t, err)

	return NewServer(cfg, authSvc, bouquetSvc, files, files.Dir()).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// the end-to-end flow: register, duplicate, login, bouquet, message with QR,
// public read, missing message
func TestGiftingFlow(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered struct {
		ID       uint64 `json:"id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	decodeBody(t, rec, &registered)
	assert.Equal(t, uint64(1), registered.ID)
	assert.NotEmpty(t, registered.Token)

	rec = doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "anything1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exists")

	rec = doJSON(t, h, "POST", "/api/login", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var logged struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &logged)
	token := logged.Token
	require.NotEmpty(t, token)

	rec = doJSON(t, h, "POST", "/api/bouquets", token, map[string]string{
		"occasion": "Birthday", "flowerType": "roses", "colorTheme": "soft-pink",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var b store.Bouquet
	decodeBody(t, rec, &b)
	assert.Equal(t, uint64(1), b.ID)

	rec = doJSON(t, h, "POST", fmt.Sprintf("/api/bouquets/%d/messages", b.ID), token, map[string]string{
		"senderName": "Bob", "content": "Hi",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var m store.Message
	decodeBody(t, rec, &m)
	assert.Equal(t, uint64(1), m.ID)
	assert.True(t, strings.HasPrefix(m.QRCodeURL, "data:image/png;base64,"))

	// public read, no session
	rec = doJSON(t, h, "GET", "/api/messages/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var public store.Message
	decodeBody(t, rec, &public)
	assert.Equal(t, m.ID, public.ID)
	require.NotNil(t, public.Content)
	assert.Equal(t, "Hi", *public.Content)
	assert.Equal(t, m.QRCodeURL, public.QRCodeURL)

	rec = doJSON(t, h, "GET", "/api/messages/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	h := newTestServer(t)

	protected := []struct {
		method, path string
	}{
		{"GET", "/api/user"},
		{"GET", "/api/bouquets"},
		{"POST", "/api/bouquets"},
		{"POST", "/api/bouquets/1/messages"},
		{"POST", "/api/upload"},
		{"POST", "/api/logout"},
	}
	for _, route := range protected {
		rec := doJSON(t, h, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	h := newTestServer(t)

	doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})

	wrongPassword := doJSON(t, h, "POST", "/api/login", "", map[string]string{
		"username": "alice", "password": "nope123",
	})
	unknownUser := doJSON(t, h, "POST", "/api/login", "", map[string]string{
		"username": "nobody", "password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLogoutRevokesSession(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &registered)
	token := registered.Token

	rec = doJSON(t, h, "GET", "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "POST", "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "GET", "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBouquet_ValidationReportsFirstField(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &registered)

	rec = doJSON(t, h, "POST", "/api/bouquets", registered.Token, map[string]string{
		"occasion": "", "flowerType": "roses", "colorTheme": "soft-pink",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "occasion", body.Field)
	assert.NotEmpty(t, body.Message)
}

func TestCreateMessage_ForeignBouquetIs404(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	var alice struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &alice)

	rec = doJSON(t, h, "POST", "/api/bouquets", alice.Token, map[string]string{
		"occasion": "Birthday", "flowerType": "roses", "colorTheme": "soft-pink",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "mallory", "password": "secret2",
	})
	var mallory struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &mallory)

	rec = doJSON(t, h, "POST", "/api/bouquets/1/messages", mallory.Token, map[string]string{
		"senderName": "Mallory",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// unparsable id answers the same way
	rec = doJSON(t, h, "POST", "/api/bouquets/abc/messages", mallory.Token, map[string]string{
		"senderName": "Mallory",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBouquets_OnlyMine(t *testing.T) {
	h := newTestServer(t)

	var tokens []string
	for _, name := range []string{"alice", "bobby"} {
		rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
			"username": name, "password": "secret1",
		})
		var registered struct {
			Token string `json:"token"`
		}
		decodeBody(t, rec, &registered)
		tokens = append(tokens, registered.Token)
	}

	doJSON(t, h, "POST", "/api/bouquets", tokens[0], map[string]string{
		"occasion": "Birthday", "flowerType": "roses", "colorTheme": "soft-pink",
	})
	doJSON(t, h, "POST", "/api/bouquets", tokens[1], map[string]string{
		"occasion": "Graduation", "flowerType": "tulips", "colorTheme": "pure-white",
	})

	rec := doJSON(t, h, "GET", "/api/bouquets", tokens[0], nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []store.Bouquet
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Birthday", list[0].Occasion)
}

func uploadMultipart(t *testing.T, h http.Handler, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestUpload_RoundTrip(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &registered)

	content := []byte("pretend this is a png")
	rec = uploadMultipart(t, h, registered.Token, "photo.png", content)
	require.Equal(t, http.StatusOK, rec.Code)

	var uploaded struct {
		URL string `json:"url"`
	}
	decodeBody(t, rec, &uploaded)
	require.True(t, strings.HasPrefix(uploaded.URL, "/uploads/"))

	// fetch it back through the static route, byte-identical
	fetch := doJSON(t, h, "GET", uploaded.URL, "", nil)
	require.Equal(t, http.StatusOK, fetch.Code)
	assert.Equal(t, content, fetch.Body.Bytes())
}

func TestUpload_TooLargeStoresNothing(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &registered)

	// test server cap is 1024 bytes
	rec = uploadMultipart(t, h, registered.Token, "big.bin", make([]byte, 2048))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_MissingFileField(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &registered)

	req := httptest.NewRequest("POST", "/api/upload", strings.NewReader("not multipart"))
	req.Header.Set("Authorization", "Bearer "+registered.Token)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestSessionCookieWorksToo(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/api/register", "", map[string]string{
		"username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "register must set the session cookie")
	assert.True(t, sessionCookie.HttpOnly)

	req := httptest.NewRequest("GET", "/api/user", nil)
	req.AddCookie(sessionCookie)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusOK, rec2.Code)
}
