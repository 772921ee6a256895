package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
)

const defaultAuditLimit = 100

// AuditHandler exposes the access-log trail to HR reviewers. The route is
// guarded by the RequireHR middleware.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List returns recent access-log entries, newest first.
//
// @Summary      List recent access-log entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries to return (default 100)"
// @Success      200    {object}  listAccessLogsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/v1/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	entries, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAccessLogsResponse(entries))
}
