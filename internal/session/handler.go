package session

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dexhub/internal/logging"
	synchub "dexhub/internal/sync"
	"dexhub/pkg/models"
)

type Handler struct {
	Store Store
	Hub   *synchub.Hub // optional
	Log   *slog.Logger
	now   func() time.Time
}

func NewHandler(store Store, hub *synchub.Hub, log *slog.Logger) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handler{Store: store, Hub: hub, Log: log, now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)                      // GET /sessions
	rg.POST("", h.create)                   // POST /sessions
	rg.DELETE("/:id", h.deleteSession)      // DELETE /sessions/:id
	rg.GET("/:id/search", h.getSearch)      // GET /sessions/:id/search
	rg.PUT("/:id/search", h.putSearch)      // PUT /sessions/:id/search
	rg.DELETE("/:id/search", h.clearSearch) // DELETE /sessions/:id/search
	rg.PUT("/:id/scroll", h.putScroll)      // PUT /sessions/:id/scroll
	if h.Hub != nil {
		rg.GET("/:id/ws", h.requireSession, synchub.WSHandler(h.Hub, h.Log)) // GET /sessions/:id/ws
	}
}

func (h *Handler) create(c *gin.Context) {
	id := uuid.NewString()
	st := &models.SearchState{CurrentPage: 1, UpdatedAt: h.now().UTC()}
	if err := h.Store.Save(c.Request.Context(), id, st); err != nil {
		h.Log.Error("create session failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id, "state": st})
}

func (h *Handler) list(c *gin.Context) {
	ids, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list sessions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"total": len(ids), "items": ids})
}

func (h *Handler) deleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		h.Log.Error("delete session failed", "session", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	h.publish(id, synchub.SessionEvent{Type: synchub.EventSessionClosed, SessionID: id})
	if h.Hub != nil {
		h.Hub.CloseSession(id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) getSearch(c *gin.Context) {
	st, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st)
}

type searchRequest struct {
	NameFilter       string               `json:"name_filter"`
	NumberFilter     string               `json:"number_filter"`
	TypeFilter       string               `json:"type_filter"`
	GenerationFilter string               `json:"generation_filter"`
	Results          []models.PokemonCard `json:"results"`
	HasSearched      bool                 `json:"has_searched"`
	FilterFormOpen   bool                 `json:"filter_form_open"`
	CurrentPage      int                  `json:"current_page"`
}

func (h *Handler) putSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.CurrentPage < 1 {
		req.CurrentPage = 1
	}

	st, ok := h.load(c)
	if !ok {
		return
	}
	st.NameFilter = req.NameFilter
	st.NumberFilter = req.NumberFilter
	st.TypeFilter = req.TypeFilter
	st.GenerationFilter = req.GenerationFilter
	st.Results = req.Results
	st.HasSearched = req.HasSearched
	st.FilterFormOpen = req.FilterFormOpen
	st.CurrentPage = req.CurrentPage

	if !h.save(c, st) {
		return
	}
	h.publish(c.Param("id"), synchub.SessionEvent{
		Type:        synchub.EventSearchUpdated,
		SessionID:   c.Param("id"),
		ResultCount: len(st.Results),
	})
	c.JSON(http.StatusOK, st)
}

// clearSearch forgets the search and the scroll position; the session stays.
func (h *Handler) clearSearch(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}
	st := &models.SearchState{CurrentPage: 1}
	if !h.save(c, st) {
		return
	}
	h.publish(c.Param("id"), synchub.SessionEvent{Type: synchub.EventSearchCleared, SessionID: c.Param("id")})
	c.JSON(http.StatusOK, st)
}

type scrollRequest struct {
	ScrollPosition *int `json:"scroll_position" binding:"required"`
}

func (h *Handler) putScroll(c *gin.Context) {
	var req scrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scroll_position is required"})
		return
	}
	if *req.ScrollPosition < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scroll_position must be >= 0"})
		return
	}

	st, ok := h.load(c)
	if !ok {
		return
	}
	st.ScrollPosition = *req.ScrollPosition
	if !h.save(c, st) {
		return
	}
	pos := st.ScrollPosition
	h.publish(c.Param("id"), synchub.SessionEvent{
		Type:           synchub.EventScrollUpdated,
		SessionID:      c.Param("id"),
		ScrollPosition: &pos,
	})
	c.JSON(http.StatusOK, gin.H{"scroll_position": pos})
}

func (h *Handler) requireSession(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		c.Abort()
		return
	}
	c.Next()
}

// load writes the error response itself and reports whether to continue.
func (h *Handler) load(c *gin.Context) (*models.SearchState, bool) {
	id := c.Param("id")
	st, err := h.Store.Load(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return nil, false
		}
		h.Log.Error("load session failed", "session", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return nil, false
	}
	return st, true
}

func (h *Handler) save(c *gin.Context, st *models.SearchState) bool {
	id := c.Param("id")
	st.UpdatedAt = h.now().UTC()
	if err := h.Store.Save(c.Request.Context(), id, st); err != nil {
		h.Log.Error("save session failed", "session", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return false
	}
	return true
}

func (h *Handler) publish(sessionID string, ev synchub.SessionEvent) {
	if h.Hub == nil {
		return
	}
	ev.At = h.now().UTC()
	h.Hub.Publish(sessionID, ev)
}
