package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmindex/repurpose/internal/application/search"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

// SearchHandler serves the interactive lookup endpoints.
type SearchHandler struct {
	svc search.Service
}

func NewSearchHandler(svc search.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles GET /api/search?q=<query>.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondError(c, apperrors.New(apperrors.ErrCodeClassifyEmptyQuery, "query parameter q is required"))
		return
	}
	result, err := h.svc.Search(c.Request.Context(), &search.SearchInput{
		Query:     query,
		UserEmail: c.Query("email"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result)
}

// Repurpose handles GET /api/repurpose?disease=<name>.
func (h *SearchHandler) Repurpose(c *gin.Context) {
	result, err := h.svc.Repurpose(c.Request.Context(), c.Query("disease"), parsePagination(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result)
}

// DrugDetail handles GET /api/drug/:name.
func (h *SearchHandler) DrugDetail(c *gin.Context) {
	rec, err := h.svc.DrugDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rec)
}

// History handles GET /api/history?limit=<n>.
func (h *SearchHandler) History(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	entries, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entries)
}
