package web

import (
	"context"
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/theme"
)

// PreferenceRetention is how long an untouched preference is kept.
const PreferenceRetention = 365 * 24 * time.Hour

// AdminStore is the slice of the preference store the dashboard reads.
type AdminStore interface {
	CountValues(ctx context.Context, key string) (map[string]int64, error)
	Prune(ctx context.Context, maxAge time.Duration) (int64, error)
}

type adminStats struct {
	Themes      map[string]int64 `json:"themes"`
	Preferences int64            `json:"preferences"`
}

type admin struct {
	creds  config.Admin
	store  AdminStore
	server *Server

	mu    sync.RWMutex
	token string
}

// EnableAdmin mounts the admin routes guarded by creds. It is a no-op when
// creds are incomplete or store is nil.
func (s *Server) EnableAdmin(creds config.Admin, store AdminStore) error {
	if !creds.Enabled() || store == nil {
		s.logger.Println("Admin routes disabled: set ADMIN_USERNAME and ADMIN_PASSWORD")
		return nil
	}
	token, err := randomToken()
	if err != nil {
		return err
	}
	a := &admin{creds: creds, token: token, store: store, server: s}

	s.engine.POST("/admin/login", a.login)
	s.engine.POST("/admin/logout", a.logout)

	group := s.engine.Group("/admin")
	group.Use(a.authMiddleware())
	group.GET("/api/stats", a.stats)
	group.POST("/privacy/prune", a.prune)

	s.logger.Printf("Admin access available at: /admin/login")
	return nil
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || !a.validToken(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

func (a *admin) validToken(token string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

func (a *admin) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	visitor := a.server.visitors.key(c.ClientIP())

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	if !userOK || !passOK {
		a.server.logger.Printf("Failed admin login attempt from %s", visitor)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	a.mu.RLock()
	token := a.token
	a.mu.RUnlock()

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("admin_token", token, 3600*24, "/admin", "", false, true)
	a.server.logger.Printf("Admin login successful from %s", visitor)
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// logout rotates the session token so copies of the old cookie stop working.
func (a *admin) logout(c *gin.Context) {
	token, err := randomToken()
	if err != nil {
		a.server.logger.Printf("Error rotating admin token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *admin) stats(c *gin.Context) {
	counts, err := a.store.CountValues(c.Request.Context(), theme.Key)
	if err != nil {
		a.server.logger.Printf("Error loading admin stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	stats := adminStats{Themes: counts}
	for _, n := range counts {
		stats.Preferences += n
	}
	c.JSON(http.StatusOK, stats)
}

func (a *admin) prune(c *gin.Context) {
	removed, err := a.store.Prune(c.Request.Context(), PreferenceRetention)
	if err != nil {
		a.server.logger.Printf("Error pruning preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
