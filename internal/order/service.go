package order

import (
	"context"

	"hostel-store/internal/cart"
	"hostel-store/internal/logger"
	"hostel-store/internal/remote"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Repository is the slice of the remote data service orders need.
type Repository interface {
	Insert(ctx context.Context, table string, payload any, token string, dest any) error
	Select(ctx context.Context, table string, q remote.Query, token string, dest any) error
}

// Service owns the checkout orchestration and order history reads.
// Neither the cart store nor the session store owns this flow.
type Service interface {
	Checkout(ctx context.Context, ident *remote.Identity, token string, crt *cart.Store, method PaymentMethod) (*Order, error)
	History(ctx context.Context, ident *remote.Identity, token string, limit int) ([]Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Checkout snapshots the cart, records the order on the remote service,
// and clears the cart only after the insert is confirmed. On any failure
// the cart is left intact so the attempt can be retried as-is. No remote
// call is made without an identity or with an empty cart.
func (s *service) Checkout(
	ctx context.Context,
	ident *remote.Identity,
	token string,
	crt *cart.Store,
	method PaymentMethod,
) (*Order, error) {

	if ident == nil {
		return nil, ErrAuthenticationRequired
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	items := crt.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// The total is derived from the snapshot itself, not read from the
	// cart again; a mutation landing between the two reads must never
	// produce an order whose total disagrees with its items.
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	log := logger.FromCtx(ctx).With(
		zap.String("user_id", ident.ID),
		zap.Int("lines", len(items)),
		zap.String("total", total.String()),
		zap.String("payment_method", string(method)),
	)

	payload := newOrder{
		UserID:        ident.ID,
		Items:         items,
		Total:         total,
		Status:        StatusProcessing,
		PaymentMethod: method,
	}

	var created []Order
	if err := s.repo.Insert(ctx, "orders", payload, token, &created); err != nil {
		log.Error("order submission failed", zap.Error(err))
		return nil, err
	}

	crt.Clear()

	placed := &Order{
		UserID:        payload.UserID,
		Items:         payload.Items,
		Total:         payload.Total,
		Status:        payload.Status,
		PaymentMethod: payload.PaymentMethod,
	}
	if len(created) > 0 {
		placed = &created[0]
	}

	log.Info("order placed", zap.String("order_id", placed.ID))
	return placed, nil
}

// History lists the user's orders newest first. limit caps the rows when
// positive; zero means all of them.
func (s *service) History(
	ctx context.Context,
	ident *remote.Identity,
	token string,
	limit int,
) ([]Order, error) {

	if ident == nil {
		return nil, ErrAuthenticationRequired
	}

	log := logger.FromCtx(ctx).With(zap.String("user_id", ident.ID))

	q := remote.NewQuery().
		Eq("user_id", ident.ID).
		Order("created_at", true)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var orders []Order
	if err := s.repo.Select(ctx, "orders", q, token, &orders); err != nil {
		log.Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}

	log.Debug("orders fetched", zap.Int("count", len(orders)))
	return orders, nil
}
