package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/config"
)

func loginRequest(user, pass string) *http.Request {
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAdminDisabledWithoutCredentials(t *testing.T) {
	env := newTestEnv(t)
	if err := env.server.EnableAdmin(config.Admin{}, env.store); err != nil {
		t.Fatalf("EnableAdmin() error = %v", err)
	}
	rec := env.do(loginRequest("admin", "pw"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAdminStatsRequireLogin(t *testing.T) {
	env := newTestEnv(t)
	if err := env.server.EnableAdmin(config.Admin{Username: "admin", Password: "pw"}, env.store); err != nil {
		t.Fatalf("EnableAdmin() error = %v", err)
	}
	ctx := context.Background()
	env.store.Set(ctx, "a", "theme", "light")
	env.store.Set(ctx, "b", "theme", "dark")
	env.store.Set(ctx, "c", "theme", "light")

	if rec := env.do(httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if rec := env.do(loginRequest("admin", "wrong")); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	login := env.do(loginRequest("admin", "pw"))
	if login.Code != http.StatusOK {
		t.Fatalf("login status = %d, want %d", login.Code, http.StatusOK)
	}
	var session *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == "admin_token" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("login set no admin_token cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(session)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want %d", rec.Code, http.StatusOK)
	}
	var stats adminStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Preferences != 3 || stats.Themes["light"] != 2 {
		t.Fatalf("stats = %+v, want 3 preferences, 2 light", stats)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/privacy/prune", nil)
	req.AddCookie(session)
	if rec := env.do(req); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"removed":0`) {
		t.Fatalf("prune = %d %s", rec.Code, rec.Body.String())
	}
}

func TestAdminLogoutRevokesSession(t *testing.T) {
	env := newTestEnv(t)
	if err := env.server.EnableAdmin(config.Admin{Username: "admin", Password: "pw"}, env.store); err != nil {
		t.Fatalf("EnableAdmin() error = %v", err)
	}

	var session *http.Cookie
	for _, c := range env.do(loginRequest("admin", "pw")).Result().Cookies() {
		if c.Name == "admin_token" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("login set no admin_token cookie")
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(session)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d, want %d", rec.Code, http.StatusOK)
	}
	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_token" {
			cleared = c
		}
	}
	if cleared == nil || cleared.Value != "" || cleared.MaxAge >= 0 || cleared.Path != "/admin" {
		t.Fatalf("logout cookie = %+v, want an expired /admin cookie", cleared)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(session)
	if rec := env.do(req); rec.Code != http.StatusUnauthorized {
		t.Fatalf("stats with old session = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var fresh *http.Cookie
	for _, c := range env.do(loginRequest("admin", "pw")).Result().Cookies() {
		if c.Name == "admin_token" {
			fresh = c
		}
	}
	if fresh == nil || fresh.Value == session.Value {
		t.Fatalf("second login cookie = %+v, want a new token", fresh)
	}
	req = httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.AddCookie(fresh)
	if rec := env.do(req); rec.Code != http.StatusOK {
		t.Fatalf("stats with new session = %d, want %d", rec.Code, http.StatusOK)
	}
}
