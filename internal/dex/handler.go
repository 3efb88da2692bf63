package dex

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dexhub/internal/pokeapi"
)

const maxPageSize = 100

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pokemon", h.list)                    // GET /pokemon?limit&offset
	rg.GET("/pokemon/search", h.search)           // GET /pokemon/search?q=
	rg.GET("/pokemon/filter", h.filter)           // GET /pokemon/filter?name&number&type&generation
	rg.GET("/pokemon/:id", h.details)             // GET /pokemon/25
	rg.GET("/pokemon/:id/evolution", h.evolution) // GET /pokemon/133/evolution
	rg.GET("/pokemon/:id/variants", h.variants)   // GET /pokemon/37/variants
	rg.GET("/types", h.types)
	rg.GET("/types/:name", h.byType)
	rg.GET("/generations", h.generations)
}

func (h *Handler) list(c *gin.Context) {
	limit := parseInt(c.Query("limit"), 20)
	offset := parseInt(c.Query("offset"), 0)
	if limit <= 0 || limit > maxPageSize {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items := h.Service.List(c.Request.Context(), limit, offset)
	c.JSON(http.StatusOK, gin.H{
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *Handler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q"})
		return
	}
	c.JSON(http.StatusOK, h.Service.Search(c.Request.Context(), q))
}

func (h *Handler) filter(c *gin.Context) {
	var f Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}
	if f.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one filter is required"})
		return
	}
	items := h.Service.FilterSearch(c.Request.Context(), f)
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

func (h *Handler) details(c *gin.Context) {
	d, err := h.Service.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream lookup failed"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) evolution(c *gin.Context) {
	stages := h.Service.EvolutionLine(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

func (h *Handler) variants(c *gin.Context) {
	items, err := h.Service.VariantCards(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": Types})
}

func (h *Handler) byType(c *gin.Context) {
	items := h.Service.ByType(c.Request.Context(), c.Param("name"))
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

func (h *Handler) generations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": Generations()})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
