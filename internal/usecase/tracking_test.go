package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/l2drycleaners/cleanpress/internal/domain/errors"
	"github.com/l2drycleaners/cleanpress/internal/domain/model"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })
	return now
}

func trackedOrder(status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:         "order-1",
		UserID:     "user-1",
		Status:     status,
		PickupDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2024, 2, 28, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildTimelinePendingPickup(t *testing.T) {
	order := trackedOrder(model.OrderStatusPendingPickup)
	timeline := BuildTimeline(order, time.Now())

	if len(timeline) != 1 {
		t.Fatalf("expected single milestone, got %d", len(timeline))
	}
	if timeline[0].Status != model.OrderStatusPendingPickup {
		t.Fatalf("unexpected status %s", timeline[0].Status)
	}
	if !timeline[0].Date.Equal(order.CreatedAt) {
		t.Fatalf("expected creation time, got %v", timeline[0].Date)
	}
	if !timeline[0].Completed {
		t.Fatal("milestones are always completed")
	}
}

func TestBuildTimelinePickedUp(t *testing.T) {
	order := trackedOrder(model.OrderStatusPickedUp)
	timeline := BuildTimeline(order, time.Now())

	if len(timeline) != 2 {
		t.Fatalf("expected two milestones, got %d", len(timeline))
	}
	if timeline[1].Status != model.OrderStatusPickedUp {
		t.Fatalf("unexpected status %s", timeline[1].Status)
	}
	if !timeline[1].Date.Equal(order.PickupDate) {
		t.Fatalf("expected pickup date, got %v", timeline[1].Date)
	}
}

func TestBuildTimelinePlaceholderDates(t *testing.T) {
	// No processing or ready timestamps are persisted; the timeline
	// fabricates them relative to now.
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	order := trackedOrder(model.OrderStatusReadyForDelivery)
	timeline := BuildTimeline(order, now)

	if len(timeline) != 4 {
		t.Fatalf("expected four milestones, got %d", len(timeline))
	}
	if !timeline[2].Date.Equal(now.Add(-2 * time.Hour)) {
		t.Fatalf("expected processing two hours before now, got %v", timeline[2].Date)
	}
	if !timeline[3].Date.Equal(now.Add(-1 * time.Hour)) {
		t.Fatalf("expected ready one hour before now, got %v", timeline[3].Date)
	}
}

func TestBuildTimelineDeliveredWithDate(t *testing.T) {
	order := trackedOrder(model.OrderStatusDelivered)
	delivered := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	order.DeliveryDate = &delivered

	timeline := BuildTimeline(order, time.Now())

	if len(timeline) != 5 {
		t.Fatalf("expected five milestones, got %d", len(timeline))
	}
	last := timeline[len(timeline)-1]
	if last.Status != model.OrderStatusDelivered {
		t.Fatalf("unexpected final status %s", last.Status)
	}
	if !last.Date.Equal(delivered) {
		t.Fatalf("expected delivery date %v, got %v", delivered, last.Date)
	}
	for i, m := range timeline {
		if !m.Completed {
			t.Fatalf("milestone %d not completed", i)
		}
		if m.Status != model.OrderStatuses[i] {
			t.Fatalf("milestone %d out of sequence: %s", i, m.Status)
		}
	}
}

func TestBuildTimelineDeliveredWithoutDateFallsBackToNow(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	order := trackedOrder(model.OrderStatusDelivered)

	timeline := BuildTimeline(order, now)

	last := timeline[len(timeline)-1]
	if !last.Date.Equal(now) {
		t.Fatalf("expected fallback to now, got %v", last.Date)
	}
}

func TestTrackingUseCaseTrack(t *testing.T) {
	now := fixedNow(t)
	stored := trackedOrder(model.OrderStatusProcessing)

	uc := NewTrackingUseCase(stubOrderRepository{getFn: func(_ context.Context, id string) (*model.Order, error) {
		if id != "order-1" {
			t.Fatalf("unexpected order id %q", id)
		}
		return stored, nil
	}})

	order, timeline, err := uc.Track(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != stored {
		t.Fatal("expected stored order to be returned")
	}
	if len(timeline) != 3 {
		t.Fatalf("expected three milestones, got %d", len(timeline))
	}
	if !timeline[2].Date.Equal(now.Add(-2 * time.Hour)) {
		t.Fatalf("expected injected clock to drive placeholders, got %v", timeline[2].Date)
	}
}

func TestTrackingUseCaseTrackUnknownOrder(t *testing.T) {
	uc := NewTrackingUseCase(stubOrderRepository{getFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})

	if _, _, err := uc.Track(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
