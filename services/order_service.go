package services

import (
	"context"
	"strings"
	"sync"

	"gateway/entity"
	"gateway/normalize"
	"gateway/upstream"
)

// OrderService reconciles the upstream's inconsistent order endpoints
// into the canonical model the desk, admin and kitchen views share.
type OrderService struct {
	Upstream *upstream.Client
	Workers  int
}

func NewOrderService(client *upstream.Client) *OrderService {
	return &OrderService{Upstream: client, Workers: 8}
}

func (s *OrderService) workers() int {
	if s.Workers <= 0 {
		return 8
	}
	return s.Workers
}

// List fetches and normalizes the full order list, then enriches each
// row's total concurrently: completed orders take the invoice grand
// total, open orders recompute from the order detail's items. A row
// whose enrichment fetch fails keeps the total from the listing payload.
func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	raws, err := s.Upstream.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]entity.Order, len(raws))
	for i, r := range raws {
		orders[i] = normalize.Order(r)
	}

	sem := make(chan struct{}, s.workers())
	var wg sync.WaitGroup
	for i := range orders {
		if orders[i].ID == "" {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(o *entity.Order) {
			defer wg.Done()
			defer func() { <-sem }()
			s.enrichTotal(ctx, o)
		}(&orders[i])
	}
	wg.Wait()

	return orders, nil
}

func (s *OrderService) enrichTotal(ctx context.Context, o *entity.Order) {
	if strings.EqualFold(o.Status, entity.StatusCompleted) {
		raw, err := s.Upstream.OrderInvoice(ctx, o.ID)
		if err != nil {
			return
		}
		if total := normalize.Num(raw, "grand_total", "total"); total != 0 {
			o.Total = total
		}
		return
	}

	raw, err := s.Upstream.OrderDetail(ctx, o.ID)
	if err != nil {
		return
	}
	detail := normalize.Order(raw)
	if len(detail.Items) > 0 {
		o.Items = detail.Items
		o.Total = detail.Subtotal()
	}
}

// Active returns the normalized orders the kitchen cares about, without
// total enrichment (the kitchen display never shows money).
func (s *OrderService) Active(ctx context.Context) ([]entity.Order, error) {
	raws, err := s.Upstream.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(raws))
	for _, r := range raws {
		o := normalize.Order(r)
		if entity.IsActiveStatus(o.Status) {
			out = append(out, o)
		}
	}
	return out, nil
}

// Detail resolves an order's detail view. The invoice endpoint is the
// primary source; when it fails, or answers with order data instead of a
// real invoice, the order-detail endpoint is fetched next (sequentially,
// never in parallel). The result is tagged with where the data came from.
func (s *OrderService) Detail(ctx context.Context, id string) (entity.OrderDetailResult, error) {
	ref := entity.Order{ID: id}

	invRaw, invErr := s.Upstream.OrderInvoice(ctx, id)
	if invErr == nil && normalize.IsInvoice(invRaw) {
		inv := normalize.Invoice(invRaw, ref)
		return entity.OrderDetailResult{
			Source:  entity.SourceInvoice,
			Invoice: inv,
		}, nil
	}

	detRaw, detErr := s.Upstream.OrderDetail(ctx, id)
	if detErr != nil {
		// Both sources down, or the invoice was unusable and the detail
		// fetch failed too. The caller renders "details unavailable".
		return entity.OrderDetailResult{}, detErr
	}

	order := normalize.Order(detRaw)
	if order.ID == "" {
		order.ID = id
	}
	return entity.OrderDetailResult{
		Source:   entity.SourceOrderDetail,
		Invoice:  normalize.InvoiceFromOrder(order),
		Timeline: normalize.Timeline(order),
	}, nil
}

// Invoice fetches and normalizes an order's invoice, reporting whether
// the upstream actually has one.
func (s *OrderService) Invoice(ctx context.Context, id string) (entity.Invoice, bool, error) {
	raw, err := s.Upstream.OrderInvoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, false, err
	}
	if !normalize.IsInvoice(raw) {
		return entity.Invoice{}, false, nil
	}
	return normalize.Invoice(raw, entity.Order{ID: id}), true, nil
}

// CreateInvoice asks the upstream to bill an order and returns the
// normalized result.
func (s *OrderService) CreateInvoice(ctx context.Context, id string, body map[string]any) (entity.Invoice, error) {
	raw, err := s.Upstream.CreateOrderInvoice(ctx, id, body)
	if err != nil {
		return entity.Invoice{}, err
	}
	return normalize.Invoice(raw, entity.Order{ID: id}), nil
}
