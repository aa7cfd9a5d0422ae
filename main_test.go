package main

import (
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithunxcpu/portfolio/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, posts map[string]string) (*gin.Engine, *config.Config) {
	t.Helper()

	postsDir := filepath.Join(t.TempDir(), "posts")
	require.NoError(t, os.Mkdir(postsDir, 0o755))
	for name, content := range posts {
		require.NoError(t, os.WriteFile(filepath.Join(postsDir, name), []byte(content), 0o644))
	}

	conn, err := openDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db = conn
	t.Cleanup(func() { conn.Close() })

	initAdminToken()

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0"},
		Content: config.ContentConfig{PostsDir: postsDir, DedupThreshold: 0.5},
		Storage: config.StorageConfig{VisitorRetentionMonths: 12, TrackVisitors: true},
	}
	return setupRouter(cfg), cfg
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	// keep request tracking out of tests that are not about it
	if req.Header.Get("DNT") == "" {
		req.Header.Set("DNT", "1")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countVisitors(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&n))
	return n
}

var samplePosts = map[string]string{
	"2025-01-05-caching.md": "---\ntitle: \"Caching Is Hard\"\ndate: \"2025-01-05\"\nexcerpt: \"Invalidation bites.\"\ntags: [\"infra\"]\n---\n\n" +
		"apple banana cherry date apple banana cherry date\n\nSome **bold** claim.",
	"2025-02-01-fruit.md": "---\ntitle: \"Fruit Salad\"\ndate: \"2025-02-01\"\nepisode: \"E212\"\nvideoId: \"abc123\"\n---\n\napple banana cherry elderberry",
}

func TestHomePage(t *testing.T) {
	r, _ := newTestServer(t, samplePosts)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), Tagline)
	assert.Contains(t, w.Body.String(), "Fruit Salad")
}

func TestBlogList(t *testing.T) {
	r, _ := newTestServer(t, samplePosts)

	w := do(r, httptest.NewRequest(http.MethodGet, "/blog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Caching Is Hard")
	assert.Contains(t, body, "Invalidation bites.")
	assert.Less(t, strings.Index(body, "Fruit Salad"), strings.Index(body, "Caching Is Hard"))
}

func TestBlogPost(t *testing.T) {
	r, _ := newTestServer(t, samplePosts)

	w := do(r, httptest.NewRequest(http.MethodGet, "/blog/caching", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>bold</strong>")

	w = do(r, httptest.NewRequest(http.MethodGet, "/blog/fruit", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="https://www.youtube.com/watch?v=abc123"`)
	assert.Contains(t, w.Body.String(), "E212")

	w = do(r, httptest.NewRequest(http.MethodGet, "/blog/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogWithoutContentDir(t *testing.T) {
	r, cfg := newTestServer(t, nil)
	require.NoError(t, os.Remove(cfg.Content.PostsDir))

	w := do(r, httptest.NewRequest(http.MethodGet, "/blog", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts yet")
}

func TestContactForm(t *testing.T) {
	r, cfg := newTestServer(t, nil)

	form := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}}
	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return do(r, req)
	}

	w := post()
	assert.Contains(t, w.Body.String(), "error sending your message")

	// setupRouter captured cfg by pointer
	cfg.SMTP = config.SMTPConfig{Host: "smtp.test", Port: "25", User: "me@test", Pass: "pw"}
	var gotTo []string
	var gotMsg string
	orig := sendMail
	sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotTo = to
		gotMsg = string(msg)
		return nil
	}
	t.Cleanup(func() { sendMail = orig })

	w = post()
	assert.Contains(t, w.Body.String(), "Thank you for your message")
	assert.Equal(t, []string{"me@test"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Portfolio Contact: Ada")
	assert.Contains(t, gotMsg, "Reply-To: ada@example.com")
}

func TestHeaderSafe(t *testing.T) {
	assert.Equal(t, "Ada  Bcc: x@y", headerSafe("Ada\r\nBcc: x@y"))
	assert.NotContains(t, headerSafe("a\nb\rc"), "\n")
}
