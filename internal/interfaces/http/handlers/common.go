// Package handlers contains the gin HTTP handlers for the public API.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmindex/repurpose/internal/interfaces/http/middleware"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// parsePagination reads page and page_size query parameters with defaults.
func parsePagination(c *gin.Context) common.Pagination {
	p := common.Pagination{Page: 1, PageSize: 20}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			p.PageSize = n
		}
	}
	return p
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.OK(middleware.GetRequestID(c), data))
}

// respondError maps an AppError code to a status; unknown error types are
// masked as internal.
func respondError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)
	var ae *apperrors.AppError
	if errors.As(err, &ae) {
		status := apperrors.HTTPStatusForCode(ae.Code)
		c.JSON(status, common.Fail[interface{}](requestID, string(ae.Code), ae.Message, ae.Detail))
		return
	}
	c.JSON(http.StatusInternalServerError, common.Fail[interface{}](
		requestID, string(apperrors.CodeInternal), "internal server error", ""))
}
