package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/theme"
)

const themeCookieMaxAge = 365 * 24 * 3600

// currentTheme prefers the cookie, then the stored preference.
func (s *Server) currentTheme(c *gin.Context) theme.Theme {
	if raw, err := c.Cookie(theme.Key); err == nil {
		if t, ok := theme.Parse(raw); ok {
			return t
		}
	}
	if s.prefs != nil && trackingAllowed(c) {
		return s.prefs.Load(c.Request.Context(), s.visitors.key(c.ClientIP()))
	}
	return theme.Default
}

func (s *Server) rememberTheme(c *gin.Context, t theme.Theme) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.Key, t.String(), themeCookieMaxAge, "/", "", false, false)
	if s.prefs == nil || !trackingAllowed(c) {
		return
	}
	if err := s.prefs.Save(c.Request.Context(), s.visitors.key(c.ClientIP()), t); err != nil {
		// the cookie still carries the choice
		s.logger.Printf("Error saving theme preference: %v", err)
	}
}

func themeResponse(t theme.Theme) gin.H {
	return gin.H{"theme": t.String(), "icon": t.Icon()}
}

func (s *Server) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, themeResponse(s.currentTheme(c)))
}

func (s *Server) toggleTheme(c *gin.Context) {
	next := s.currentTheme(c).Toggle()
	s.rememberTheme(c, next)
	c.JSON(http.StatusOK, themeResponse(next))
}

type themeRequest struct {
	Theme string `json:"theme" form:"theme" binding:"required"`
}

func (s *Server) putTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme is required"})
		return
	}
	t, ok := theme.Parse(req.Theme)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be dark or light"})
		return
	}
	s.rememberTheme(c, t)
	c.JSON(http.StatusOK, themeResponse(t))
}
