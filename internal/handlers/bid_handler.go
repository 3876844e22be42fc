package handlers

import (
	"net/http"

	"gigwork_backend/internal/middleware"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	*BaseHandler
	bidService  *services.BidService
	hireService *services.HireService
}

func NewBidHandler(base *BaseHandler, bidService *services.BidService, hireService *services.HireService) *BidHandler {
	return &BidHandler{
		BaseHandler: base,
		bidService:  bidService,
		hireService: hireService,
	}
}

func (h *BidHandler) RegisterRoutes(r *gin.RouterGroup) {
	bids := r.Group("/bids")
	bids.Use(middleware.AuthMiddleware())
	{
		// Freelancer routes
		bids.POST("", h.PlaceBid)
		bids.GET("/my", h.GetMyBids)

		// Owner routes
		bids.GET("/gig/:gigId", h.GetGigBids)
		bids.PATCH("/:bidId/hire", h.Hire)
	}
}

func (h *BidHandler) PlaceBid(c *gin.Context) {
	freelancerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bid, err := h.bidService.PlaceBid(c.Request.Context(), freelancerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}

func (h *BidHandler) GetMyBids(c *gin.Context) {
	freelancerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bids, err := h.bidService.GetMyBids(c.Request.Context(), freelancerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bids":  bids,
		"total": len(bids),
	})
}

func (h *BidHandler) GetGigBids(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bids, err := h.bidService.GetGigBids(c.Request.Context(), actorID, c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bids":  bids,
		"total": len(bids),
	})
}

// Hire - найм фрилансера по его заявке. Конкурирующий найм того же гига
// получает 409 и должен перечитать состояние гига.
func (h *BidHandler) Hire(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.hireService.Hire(c.Request.Context(), actorID, c.Param("bidId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Freelancer hired successfully",
		"bid":            result.HiredBid,
		"rejected_count": len(result.RejectedBids),
	})
}
