package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/l2drycleaners/cleanpress/internal/domain/errors"
	"github.com/l2drycleaners/cleanpress/internal/server/http/dto"
)

// TrackingHandler serves the public order tracking endpoint.
type TrackingHandler struct {
	facade TrackingFacade
}

// NewTrackingHandler constructs TrackingHandler.
func NewTrackingHandler(facade TrackingFacade) *TrackingHandler {
	return &TrackingHandler{facade: facade}
}

// Track handles GET /api/orders/:id/track. Anyone holding an order id
// may look up its progress; no session is required.
func (h *TrackingHandler) Track(c *gin.Context) {
	order, timeline, err := h.facade.TrackOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TrackingResponse{
		OrderID:      order.ID,
		Status:       string(order.Status),
		PickupDate:   order.PickupDate,
		DeliveryDate: order.DeliveryDate,
		Timeline:     timeline,
	})
}
