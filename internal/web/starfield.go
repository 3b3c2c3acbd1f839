package web

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/theme"
)

type starJSON struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Brightness float64 `json:"brightness"`
}

// stars returns freshly generated stars colored for the theme.
func (s *Server) stars(c *gin.Context) {
	count := starfield.DefaultCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be an integer"})
			return
		}
		count = min(max(n, 1), starfield.MaxCount)
	}

	current := s.currentTheme(c)
	if raw := c.Query("theme"); raw != "" {
		t, ok := theme.Parse(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be dark or light"})
			return
		}
		current = t
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	field := starfield.Generate(count, rng)
	field.Recolor(current, rng)

	stars := make([]starJSON, len(field.Stars))
	for i, star := range field.Stars {
		stars[i] = starJSON{X: star.X, Y: star.Y, Z: star.Z, Brightness: star.Brightness}
	}
	c.JSON(http.StatusOK, gin.H{
		"theme": current.String(),
		"stars": stars,
	})
}
