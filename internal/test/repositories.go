package test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/l2drycleaners/cleanpress/internal/domain/errors"
	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	"github.com/l2drycleaners/cleanpress/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[string]*model.User
	Next    int
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[string]*model.User),
		Next:    1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, params repository.CreateUserParams) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.ByEmail[params.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           fmt.Sprintf("user-%d", s.Next),
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Name:         params.Name,
		Phone:        params.Phone,
		Address:      params.Address,
		Role:         params.Role,
		CreatedAt:    time.Unix(0, 0),
	}
	s.Next++
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRole returns stored users having the requested role.
func (s *UserRepositoryStub) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, user := range s.ByID {
		if user.Role == role {
			result = append(result, *user)
		}
	}
	return result, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, string, time.Time, decimal.Decimal, []repository.NewOrderItem) (*model.Order, error)
	GetByIDFn       func(context.Context, string) (*model.Order, error)
	ListAllFn       func(context.Context) ([]model.Order, error)
	ListByUserFn    func(context.Context, string) ([]model.Order, error)
	UpdateFn        func(context.Context, string, repository.OrderUpdate) (*model.Order, error)
	CountByStatusFn func(context.Context) (map[model.OrderStatus]int, error)

	Orders []model.Order
	Counts map[model.OrderStatus]int
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID string, pickupDate time.Time, total decimal.Decimal, items []repository.NewOrderItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, pickupDate, total, items)
	}
	order := &model.Order{
		ID:          "order-1",
		UserID:      userID,
		Status:      model.OrderStatusPendingPickup,
		TotalAmount: total,
		PickupDate:  pickupDate,
	}
	for i, item := range items {
		order.Items = append(order.Items, model.OrderItem{
			ID:          fmt.Sprintf("item-%d", i+1),
			OrderID:     order.ID,
			ServiceType: item.ServiceType,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// ListByUser returns stored orders belonging to the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// Update applies the configured override or mutates the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, update repository.OrderUpdate) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			if update.Status != nil {
				s.Orders[i].Status = *update.Status
			}
			if update.DeliveryDate != nil {
				s.Orders[i].DeliveryDate = update.DeliveryDate
			}
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CountByStatus returns configured counts.
func (s *OrderRepositoryStub) CountByStatus(ctx context.Context) (map[model.OrderStatus]int, error) {
	if s.CountByStatusFn != nil {
		return s.CountByStatusFn(ctx)
	}
	if s.Counts != nil {
		return s.Counts, nil
	}
	counts := make(map[model.OrderStatus]int)
	for _, o := range s.Orders {
		counts[o.Status]++
	}
	return counts, nil
}

// FactoryStub bundles the repository stubs behind the factory interface.
type FactoryStub struct {
	UserRepo  *UserRepositoryStub
	OrderRepo *OrderRepositoryStub
	HealthErr error
}

func (s *FactoryStub) Users() repository.UserRepository {
	if s.UserRepo == nil {
		s.UserRepo = NewUserRepositoryStub()
	}
	return s.UserRepo
}

func (s *FactoryStub) Orders() repository.OrderRepository {
	if s.OrderRepo == nil {
		s.OrderRepo = &OrderRepositoryStub{}
	}
	return s.OrderRepo
}

// HealthCheck reports the configured probe result.
func (s *FactoryStub) HealthCheck(ctx context.Context) error {
	return s.HealthErr
}

var _ repository.Factory = (*FactoryStub)(nil)
