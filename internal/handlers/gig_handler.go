package handlers

import (
	"net/http"

	"gigwork_backend/internal/middleware"
	"gigwork_backend/internal/repositories"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService *services.GigService
}

func NewGigHandler(base *BaseHandler, gigService *services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(r *gin.RouterGroup) {
	gigs := r.Group("/gigs")
	{
		// Public routes
		gigs.GET("", h.SearchGigs)

		// Private routes
		private := gigs.Group("")
		private.Use(middleware.AuthMiddleware())
		{
			private.POST("", h.CreateGig)
			private.GET("/my", h.GetMyGigs)
			private.PUT("/:gigId/complete", h.CompleteGig)
		}

		gigs.GET("/:gigId", h.GetGig)
	}
}

func (h *GigHandler) CreateGig(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gig, err := h.gigService.CreateGig(c.Request.Context(), ownerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

func (h *GigHandler) SearchGigs(c *gin.Context) {
	var criteria repositories.GigCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	gigs, err := h.gigService.SearchGigs(c.Request.Context(), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gigs":  gigs,
		"total": len(gigs),
	})
}

func (h *GigHandler) GetGig(c *gin.Context) {
	gig, err := h.gigService.GetGig(c.Request.Context(), c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) GetMyGigs(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigs, err := h.gigService.GetMyGigs(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gigs":  gigs,
		"total": len(gigs),
	})
}

func (h *GigHandler) CompleteGig(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gig, err := h.gigService.CompleteGig(c.Request.Context(), actorID, c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}
