package order

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"quanngon-be/internal/logger"
	"quanngon-be/internal/utils"

	"go.uber.org/zap"
)

// Dispatcher fans a state change out to interested parties. Implementations
// are best-effort: a persisted order is never failed by a notification.
type Dispatcher interface {
	OrderCreated(ctx context.Context, o *Order)
	StatusChanged(ctx context.Context, orderID string, status Status)
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Delete(ctx context.Context, id string) (*Order, error)
	Stats(ctx context.Context, from, to *time.Time) (*Stats, error)
}

type service struct {
	repo       Repository
	dispatcher Dispatcher
}

func NewService(repo Repository, dispatcher Dispatcher) Service {
	return &service{repo: repo, dispatcher: dispatcher}
}

// Create validates the submission, persists it as a pending order and
// dispatches the new-order notifications. Dispatch happens exactly once,
// here, after the write succeeds.
func (s *service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("type", string(input.TypeOrder)),
		zap.Int("item_count", len(input.Items)),
	)

	if err := validateCreate(input); err != nil {
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	items := make([]Item, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, Item{
			MenuItemID: in.ID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			Size:       in.Size,
			Toppings:   in.Toppings,
			Price:      in.Price,
		})
	}

	o := &Order{
		Table:       input.Table,
		Items:       items,
		Status:      StatusPending,
		TypeOrder:   input.TypeOrder,
		TotalAmount: input.TotalAmount,
		Notes:       input.Notes,
	}
	if input.CustomerInfo != nil {
		o.CustomerInfo = &CustomerInfo{
			Name:    strings.TrimSpace(input.CustomerInfo.Name),
			Phone:   strings.TrimSpace(input.CustomerInfo.Phone),
			Address: strings.TrimSpace(input.CustomerInfo.Address),
		}
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	s.dispatcher.OrderCreated(ctx, created)
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Order, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus enforces the lifecycle at the workflow level; the repository
// write itself is unconditional.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", id),
		zap.String("status", string(status)),
	)

	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrOrderNotFound
	}

	if err := CanTransition(current.Status, status); err != nil {
		log.Warn("status transition rejected",
			zap.String("from", string(current.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	log.Info("order status updated", zap.String("from", string(current.Status)))
	s.dispatcher.StatusChanged(ctx, updated.ID.Hex(), updated.Status)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Order, error) {
	return s.repo.Delete(ctx, id)
}

// Stats aggregates the dashboard numbers from the order list: daily revenue
// of paid orders, best-selling items and counts per status.
func (s *service) Stats(ctx context.Context, from, to *time.Time) (*Stats, error) {
	orders, err := s.repo.List(ctx, Filter{FromDate: from, ToDate: to})
	if err != nil {
		return nil, err
	}

	revenueByDay := make(map[string]float64)
	sales := make(map[string]int)
	counts := make(map[Status]int)

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	ordersToday := 0

	for _, o := range orders {
		counts[o.Status]++
		if !o.CreatedAt.Before(startOfToday) {
			ordersToday++
		}
		if o.Status == StatusPaid {
			day := o.CreatedAt.Format("2006-01-02")
			revenueByDay[day] += o.TotalAmount
		}
		for _, item := range o.Items {
			sales[item.Name] += item.Quantity
		}
	}

	revenue := make([]RevenuePoint, 0, len(revenueByDay))
	for day, value := range revenueByDay {
		revenue = append(revenue, RevenuePoint{Date: day, Value: value})
	}
	sort.Slice(revenue, func(i, j int) bool { return revenue[i].Date < revenue[j].Date })

	products := make([]ProductSales, 0, len(sales))
	for name, qty := range sales {
		products = append(products, ProductSales{Name: name, Quantity: qty})
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Quantity != products[j].Quantity {
			return products[i].Quantity > products[j].Quantity
		}
		return products[i].Name < products[j].Name
	})
	if len(products) > 5 {
		products = products[:5]
	}

	return &Stats{
		RevenueByDay: revenue,
		TopProducts:  products,
		StatusCounts: counts,
		OrdersToday:  ordersToday,
	}, nil
}

// validateCreate is the server-side mirror of the checkout form rules.
func validateCreate(input CreateInput) error {
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrValidation)
	}
	if !ValidType(input.TypeOrder) {
		return fmt.Errorf("%w: unknown order type %q", ErrValidation, input.TypeOrder)
	}

	var total float64
	for i, item := range input.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d has no name", ErrValidation, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %q has quantity %d", ErrValidation, item.Name, item.Quantity)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %q has negative price", ErrValidation, item.Name)
		}
		total += item.Price * float64(item.Quantity)
	}

	if math.Abs(total-input.TotalAmount) > 0.001 {
		return fmt.Errorf("%w: totalAmount %.0f does not match item total %.0f",
			ErrValidation, input.TotalAmount, total)
	}

	switch input.TypeOrder {
	case TypeDineIn:
		if input.Table == nil || strings.TrimSpace(*input.Table) == "" {
			return fmt.Errorf("%w: dine-in orders require a table", ErrValidation)
		}
	case TypeTakeAway, TypeDelivery:
		info := input.CustomerInfo
		if info == nil {
			return fmt.Errorf("%w: %s orders require customer info", ErrValidation, input.TypeOrder)
		}
		if strings.TrimSpace(info.Name) == "" {
			return fmt.Errorf("%w: customer name is required", ErrValidation)
		}
		if !utils.IsValidPhone(info.Phone) {
			return fmt.Errorf("%w: invalid phone number", ErrValidation)
		}
		if input.TypeOrder == TypeDelivery && strings.TrimSpace(info.Address) == "" {
			return fmt.Errorf("%w: delivery orders require an address", ErrValidation)
		}
	}

	return nil
}
