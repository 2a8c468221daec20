// Package api is the thin HTTP shim over the bot: it marshals one text
// request into one Process call and one JSON reply. The bot itself is
// single threaded on purpose, so the shim serializes every call into
// it behind a mutex.
package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"git.sr.ht/~mariusor/kairos/bot"
	"git.sr.ht/~mariusor/kairos/calendar"
)

const Version = "1.0.0"

type chatRequest struct {
	Text string `json:"text"`
}

type handler struct {
	mu    sync.Mutex
	bot   *bot.Bot
	store *calendar.Store
}

// New builds the router: POST /chat, GET /health, GET / and the live
// calendar as an iCal feed under /calendar.ics.
func New(b *bot.Bot, store *calendar.Store, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if debug {
		r.Use(gin.Logger())
	}
	// The bot is built to never panic; defend against it regardless.
	r.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%v", rec)})
	}))

	conf := cors.DefaultConfig()
	conf.AllowAllOrigins = true
	r.Use(cors.New(conf))

	h := handler{bot: b, store: store}
	r.POST("/chat", h.chat)
	r.GET("/health", h.health)
	r.GET("/", h.home)
	r.GET("/calendar.ics", h.feed)
	return r
}

func (h *handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no JSON data provided"})
		return
	}
	if len(req.Text) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}
	h.mu.Lock()
	response := h.bot.Process(req.Text)
	h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "assistant is running"})
}

func (h *handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "kairos scheduling assistant",
		"version": Version,
		"endpoints": gin.H{
			"/chat":         "POST - send a message",
			"/health":       "GET - check service health",
			"/calendar.ics": "GET - the current calendar as an iCal feed",
		},
	})
}
