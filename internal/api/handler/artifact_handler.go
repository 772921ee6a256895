package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
)

// ArtifactHandler handles catalog reads.
type ArtifactHandler struct {
	service ports.ArtifactService
}

func NewArtifactHandler(service ports.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{service: service}
}

// List returns every artifact visible to the requester.
//
// @Summary      List accessible artifacts
// @Tags         artifacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listArtifactsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/artifacts [get]
func (h *ArtifactHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get returns a single artifact by id.
//
// @Summary      Get an artifact by id
// @Tags         artifacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Artifact id"
// @Success      200  {object}  artifactResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/artifacts/{id} [get]
func (h *ArtifactHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artifact id")
	}

	view, err := h.service.Get(c.Request().Context(), id, claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toArtifactResponse(view))
}

// Search performs a substring search over accessible artifacts.
//
// @Summary      Search accessible artifacts
// @Tags         artifacts
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Query string; empty returns no results"
// @Success      200  {object}  searchResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/search [get]
func (h *ArtifactHandler) Search(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.Search(c.Request().Context(), c.QueryParam("q"), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSearchResponse(result))
}
