package space

import (
	"errors"
	"net/http"
	"strconv"

	"testiflow/internal/pkg/response"
	"testiflow/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the space endpoints; all of them are
// owner-scoped and sit behind the JWT middleware.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	spaces := protected.Group("/spaces")
	{
		spaces.POST("", h.Create)
		spaces.GET("", h.List)
		spaces.GET("/:id", h.GetByID)
		spaces.PUT("/:id", h.Update)
		spaces.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space data", fields)
		return
	}

	sp, err := h.svc.Create(c.Request.Context(), req, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToResponse(sp))
}

func (h *Handler) List(c *gin.Context) {
	spaces, err := h.svc.ListForOwner(c.Request.Context(), c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]SpaceResponse, 0, len(spaces))
	for i := range spaces {
		out = append(out, ToResponse(&spaces[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := spaceID(c)
	if !ok {
		return
	}

	sp, err := h.svc.GetForOwner(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToResponse(sp))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := spaceID(c)
	if !ok {
		return
	}

	var req UpsertSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space data", fields)
		return
	}

	sp, err := h.svc.Update(c.Request.Context(), id, req, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToResponse(sp))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := spaceID(c)
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
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Space not found")
	case errors.Is(err, ErrOwnerNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Owner not found")
	case errors.Is(err, ErrSlugExhausted):
		response.Error(c, http.StatusConflict, "SLUG_CONFLICT", "Could not allocate a unique slug")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func spaceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid space ID")
		return 0, false
	}
	return id, true
}
