package review

import (
	"errors"
	"net/http"
	"strconv"

	"testiflow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the two unauthenticated endpoints: the
// submission form target and the embed feed.
func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.POST("/reviews/:slug", h.Submit)
	public.GET("/embed/:spaceId", h.Embed)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/reviews/:spaceId", h.ListForSpace)
	protected.PUT("/reviews/:id/like", h.ToggleLike)
	protected.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data")
		return
	}

	sp, err := h.svc.Submit(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"redirectUrl": sp.RedirectURL})
}

func (h *Handler) Embed(c *gin.Context) {
	id, ok := parseID(c, "spaceId", "Invalid space ID")
	if !ok {
		return
	}

	reviews, err := h.svc.ListLikedForEmbed(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToResponseList(reviews))
}

func (h *Handler) ListForSpace(c *gin.Context) {
	id, ok := parseID(c, "spaceId", "Invalid space ID")
	if !ok {
		return
	}

	reviews, err := h.svc.ListForSpace(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToResponseList(reviews))
}

func (h *Handler) ToggleLike(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid review ID")
	if !ok {
		return
	}

	rv, err := h.svc.ToggleLike(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToResponse(rv))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "Invalid review ID")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, c.GetString("email")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSpaceNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Space not found")
	case errors.Is(err, ErrReviewNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this space")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func parseID(c *gin.Context, param, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", msg)
		return 0, false
	}
	return id, true
}
