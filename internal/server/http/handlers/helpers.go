package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	pkgAuth "github.com/l2drycleaners/cleanpress/internal/pkg/auth"
	"github.com/l2drycleaners/cleanpress/internal/server/http/dto"
	"github.com/l2drycleaners/cleanpress/internal/server/http/middleware"
)

// CurrentClaims extracts authenticated session claims from context.
func CurrentClaims(c *gin.Context) (pkgAuth.Claims, bool) {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return pkgAuth.Claims{}, false
	}
	claims, ok := val.(pkgAuth.Claims)
	return claims, ok
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
			ServiceType: item.ServiceType,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	resp := dto.OrderResponse{
		ID:           order.ID,
		UserID:       order.UserID,
		Status:       string(order.Status),
		Items:        items,
		TotalAmount:  order.TotalAmount,
		PickupDate:   order.PickupDate,
		DeliveryDate: order.DeliveryDate,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
	if order.Customer != nil {
		resp.Customer = &dto.CustomerContact{Name: order.Customer.Name, Email: order.Customer.Email}
	}
	return resp
}
