package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/l2drycleaners/cleanpress/internal/domain/errors"
	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	"github.com/l2drycleaners/cleanpress/internal/server/http/dto"
	"github.com/l2drycleaners/cleanpress/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	claims, ok := CurrentClaims(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]usecase.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.ItemInput{
			ServiceType: item.ServiceType,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), claims.UserID, items, req.PickupDate)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders. Admins see every order and may narrow
// by the userId query parameter; customers always get their own.
func (h *OrderHandler) List(c *gin.Context) {
	claims, ok := CurrentClaims(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), claims, c.Query("userId"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	claims, ok := CurrentClaims(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var input usecase.UpdateInput
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		input.Status = &status
	}
	if req.DeliveryDate != nil {
		delivery, err := usecase.ParseDate(*req.DeliveryDate)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		input.DeliveryDate = &delivery
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), claims, input)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
