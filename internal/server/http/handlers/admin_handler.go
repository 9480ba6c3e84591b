package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	"github.com/l2drycleaners/cleanpress/internal/server/http/dto"
)

// AdminHandler serves dashboard aggregates.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders:      stats.Total,
		PendingPickup:    stats.PendingPickup,
		PickedUp:         stats.PickedUp,
		Processing:       stats.Processing,
		ReadyForDelivery: stats.ReadyForDelivery,
		Delivered:        stats.Delivered,
	})
}

// Customers handles GET /api/admin/customers.
func (h *AdminHandler) Customers(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.UserResponse, 0, len(customers))
	for _, customer := range customers {
		response = append(response, toUserResponse(customer))
	}

	c.JSON(http.StatusOK, response)
}

// ServiceHandler serves the static service catalog.
type ServiceHandler struct{}

// NewServiceHandler constructs ServiceHandler.
func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// List handles GET /api/services.
func (h *ServiceHandler) List(c *gin.Context) {
	response := make([]dto.ServiceResponse, 0, len(model.ServiceCatalog))
	for _, svc := range model.ServiceCatalog {
		response = append(response, dto.ServiceResponse{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			BasePrice:   svc.BasePrice,
			Unit:        svc.Unit,
		})
	}

	c.JSON(http.StatusOK, response)
}
