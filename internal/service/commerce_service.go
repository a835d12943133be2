package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/events"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

type CommerceService struct {
	commerce   repository.CommerceRepository
	dispatcher *events.Dispatcher
	logger     *zap.SugaredLogger
}

func NewCommerceService(commerce repository.CommerceRepository, dispatcher *events.Dispatcher, logger *zap.SugaredLogger) *CommerceService {
	return &CommerceService{commerce: commerce, dispatcher: dispatcher, logger: logger}
}

func (s *CommerceService) ListVenues(ctx context.Context, limit int64) ([]*models.Venue, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.commerce.ListVenues(ctx, limit)
}

func (s *CommerceService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	v, err := s.commerce.GetVenue(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// PlaceOrder totals the items server-side and records the optional bill split.
func (s *CommerceService) PlaceOrder(ctx context.Context, userID, venueID string, items []models.OrderItem, split []models.OrderSplit) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.InvalidArg("order needs at least one item")
	}
	if _, err := s.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}
	var total float64
	for _, it := range items {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		total += it.Price * float64(q)
	}
	if split == nil {
		split = []models.OrderSplit{}
	}
	o := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		VenueID:   venueID,
		Items:     items,
		Total:     total,
		Split:     split,
		Status:    "placed",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commerce.InsertOrder(ctx, o); err != nil {
		return nil, err
	}
	s.dispatcher.Dispatch(ctx, events.Notify{Notification: &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.NotifOrderPlaced,
		Payload:   map[string]any{"orderId": o.ID, "venueId": venueID, "total": total},
		CreatedAt: o.CreatedAt,
	}})
	return o, nil
}

func (s *CommerceService) ListOrders(ctx context.Context, userID string, limit int64) ([]*models.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	out, err := s.commerce.ListOrders(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*models.Order{}
	}
	return out, nil
}

func (s *CommerceService) ListEvents(ctx context.Context, limit int64) ([]*models.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.commerce.ListEvents(ctx, limit)
}

func (s *CommerceService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	e, err := s.commerce.GetEvent(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

// BuyTicket issues a ticket at the named tier's price with a fresh QR token.
func (s *CommerceService) BuyTicket(ctx context.Context, eventID, userID, tier string) (*models.Ticket, error) {
	e, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	var price float64
	found := false
	for _, t := range e.Tiers {
		if t.Name == tier {
			price = t.Price
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.InvalidArg("unknown ticket tier")
	}
	tk := &models.Ticket{
		ID:          uuid.New().String(),
		EventID:     eventID,
		PurchaserID: userID,
		Tier:        tier,
		Price:       price,
		QRToken:     uuid.New().String(),
		Status:      "valid",
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.commerce.InsertTicket(ctx, tk); err != nil {
		return nil, err
	}
	tk.Event = e
	s.dispatcher.Dispatch(ctx, events.Notify{Notification: &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.NotifTicketBought,
		Payload:   map[string]any{"ticketId": tk.ID, "eventId": eventID, "tier": tier},
		CreatedAt: tk.CreatedAt,
	}})
	return tk, nil
}

func (s *CommerceService) ListTickets(ctx context.Context, userID string) ([]*models.Ticket, error) {
	tickets, err := s.commerce.ListTickets(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		if e, err := s.commerce.GetEvent(ctx, t.EventID); err == nil {
			t.Event = e
		}
	}
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	return tickets, nil
}

func (s *CommerceService) ListCreators(ctx context.Context, limit int64) ([]*models.Creator, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.commerce.ListCreators(ctx, limit)
}

func (s *CommerceService) GetCreator(ctx context.Context, id string) (*models.Creator, error) {
	c, err := s.commerce.GetCreator(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrCreatorNotFound
		}
		return nil, err
	}
	return c, nil
}
