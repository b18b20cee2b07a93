package api

import (
	"github.com/gin-gonic/gin"

	"github.com/victorhprada/excel-automation/internal/service/session"
)

// SessionCookie names the cookie that carries the session id.
const SessionCookie = "faturamento_session"

const sessionContextKey = "session"

// Handler serves the validation tool API.
type Handler struct {
	sessions       *session.Store
	maxUploadBytes int64
}

// NewHandler creates the API handler. maxUploadBytes limits a single
// uploaded file; zero disables the limit.
func NewHandler(sessions *session.Store, maxUploadBytes int64) *Handler {
	return &Handler{
		sessions:       sessions,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Session snapshot
	router.GET("/status", h.GetStatus)

	// Period selection
	router.GET("/periods", h.ListPeriodOptions)
	router.POST("/period", h.SelectPeriod)

	// File uploads
	router.POST("/files/:slot", h.UploadFile)

	// Processing trigger and preview
	router.POST("/process", h.Process)
	router.GET("/preview", h.GetPreview)
}

// SessionMiddleware resolves the request's session from the cookie,
// creating one (and setting the cookie) when absent or unknown.
func (h *Handler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session

		if id, err := c.Cookie(SessionCookie); err == nil {
			sess, _ = h.sessions.Get(id)
		}
		if sess == nil {
			sess = h.sessions.Create()
			c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// session returns the request's session placed by SessionMiddleware.
func (h *Handler) session(c *gin.Context) *session.Session {
	return c.MustGet(sessionContextKey).(*session.Session)
}
