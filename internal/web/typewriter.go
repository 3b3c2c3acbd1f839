package web

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

// streamTypewriter runs one engine per connection and sends every rendered
// text as an SSE "text" event until the client goes away.
func (s *Server) streamTypewriter(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	frames := make(chan string, 16)
	sink := typewriter.SinkFunc(func(text string) {
		select {
		case frames <- text:
		case <-ctx.Done():
		}
	})

	eng, err := typewriter.New(s.typewriter.Phrases, sink, s.typewriter.Timing, typewriter.WithLogger(s.logger))
	if err != nil {
		cancel()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// cancel runs first so a blocked sink lets Stop take the lock
	defer eng.Stop()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	eng.Start()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case text := <-frames:
			c.SSEvent("text", text)
			return true
		}
	})
}
