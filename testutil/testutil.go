// Package testutil spins up the full router against a throwaway SQLite
// database so handler tests exercise the same wiring as main.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/models"
	"github.com/danielagv/threadline/routes"
)

// NewRouter builds a router with all routes registered, backed by a fresh
// seeded database in t's temp dir.
func NewRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.Feedback{},
	))
	require.NoError(t, models.SeedCatalog(db))

	r := gin.New()
	r.Use(sessions.Sessions("threadline_session", cookie.NewStore([]byte("test-secret"))))
	routes.SetupRoutes(r, db)
	return r, db
}

// Do issues a request with an optional form body and session cookies and
// returns the recorder.
func Do(r http.Handler, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// CreateUser inserts a user with a bcrypt-hashed password.
func CreateUser(t *testing.T, db *gorm.DB, username, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// Login authenticates through POST /login and returns the session cookies.
func Login(t *testing.T, r http.Handler, username, password string) []*http.Cookie {
	t.Helper()
	w := Do(r, http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code, "login failed: %s", w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// LoginCustomer creates a user and logs in as them.
func LoginCustomer(t *testing.T, r http.Handler, db *gorm.DB) (models.User, []*http.Cookie) {
	t.Helper()
	user := CreateUser(t, db, "shopper", "shopper@example.com", "pass1234")
	return user, Login(t, r, "shopper", "pass1234")
}

// LoginAdmin grants the admin marker via POST /admin/login with the default
// admin credential pair.
func LoginAdmin(t *testing.T, r http.Handler) []*http.Cookie {
	t.Helper()
	w := Do(r, http.MethodPost, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"67sigma"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code, "admin login failed: %s", w.Body.String())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// MergeCookies carries a request's session forward: cookies set in w replace
// same-named entries in base.
func MergeCookies(base []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	fresh := w.Result().Cookies()
	merged := make([]*http.Cookie, 0, len(base)+len(fresh))
	for _, ck := range base {
		replaced := false
		for _, nw := range fresh {
			if nw.Name == ck.Name {
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ck)
		}
	}
	return append(merged, fresh...)
}
