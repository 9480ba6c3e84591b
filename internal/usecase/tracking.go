package usecase

import (
	"context"
	"time"

	"github.com/l2drycleaners/cleanpress/internal/domain/model"
	"github.com/l2drycleaners/cleanpress/internal/domain/repository"
)

var timeNow = time.Now

// TrackingUseCase projects stored orders into customer-visible
// timelines. No event log exists: the timeline is reconstructed from
// the order's current fields on every read.
type TrackingUseCase struct {
	orders repository.OrderRepository
}

// NewTrackingUseCase constructs TrackingUseCase.
func NewTrackingUseCase(orders repository.OrderRepository) *TrackingUseCase {
	return &TrackingUseCase{orders: orders}
}

// Track loads the order and derives its milestone timeline.
func (u *TrackingUseCase) Track(ctx context.Context, orderID string) (*model.Order, []model.Milestone, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, BuildTimeline(order, timeNow()), nil
}

// BuildTimeline derives the milestone sequence from the order's current
// status, truncated at that status. Creation and pickup milestones use
// recorded timestamps. PROCESSING and READY_FOR_DELIVERY have no
// recorded event time, so they carry placeholder timestamps of two and
// one hours before now; the delivery milestone falls back to now when
// no delivery date was recorded. Every emitted milestone is completed;
// the timeline never looks forward.
func BuildTimeline(order *model.Order, now time.Time) []model.Milestone {
	timeline := []model.Milestone{{
		Status:    model.OrderStatusPendingPickup,
		Date:      order.CreatedAt,
		Completed: true,
	}}

	if order.Status.AtOrPast(model.OrderStatusPickedUp) {
		timeline = append(timeline, model.Milestone{
			Status:    model.OrderStatusPickedUp,
			Date:      order.PickupDate,
			Completed: true,
		})
	}

	if order.Status.AtOrPast(model.OrderStatusProcessing) {
		timeline = append(timeline, model.Milestone{
			Status:    model.OrderStatusProcessing,
			Date:      now.Add(-2 * time.Hour),
			Completed: true,
		})
	}

	if order.Status.AtOrPast(model.OrderStatusReadyForDelivery) {
		timeline = append(timeline, model.Milestone{
			Status:    model.OrderStatusReadyForDelivery,
			Date:      now.Add(-1 * time.Hour),
			Completed: true,
		})
	}

	if order.Status == model.OrderStatusDelivered {
		date := now
		if order.DeliveryDate != nil {
			date = *order.DeliveryDate
		}
		timeline = append(timeline, model.Milestone{
			Status:    model.OrderStatusDelivered,
			Date:      date,
			Completed: true,
		})
	}

	return timeline
}
