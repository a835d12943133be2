package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

type CommerceRepository interface {
	ListVenues(ctx context.Context, limit int64) ([]*models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	SearchVenues(ctx context.Context, q string, limit int64) ([]*models.Venue, error)

	InsertOrder(ctx context.Context, o *models.Order) error
	ListOrders(ctx context.Context, userID string, limit int64) ([]*models.Order, error)

	ListEvents(ctx context.Context, limit int64) ([]*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	SearchEvents(ctx context.Context, q string, limit int64) ([]*models.Event, error)

	InsertTicket(ctx context.Context, t *models.Ticket) error
	ListTickets(ctx context.Context, userID string) ([]*models.Ticket, error)

	ListCreators(ctx context.Context, limit int64) ([]*models.Creator, error)
	GetCreator(ctx context.Context, id string) (*models.Creator, error)
	SearchCreators(ctx context.Context, q string, limit int64) ([]*models.Creator, error)
}

type commerceRepo struct {
	venues   *mongo.Collection
	orders   *mongo.Collection
	events   *mongo.Collection
	tickets  *mongo.Collection
	creators *mongo.Collection
}

func NewCommerceRepository(m *Mongo) CommerceRepository {
	return &commerceRepo{
		venues:   m.Venues,
		orders:   m.Orders,
		events:   m.Events,
		tickets:  m.Tickets,
		creators: m.Creators,
	}
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var out []*T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	var v T
	err := col.FindOne(ctx, bson.M{"id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func nameSearch(q string) bson.M {
	return bson.M{"name": bson.M{"$regex": q, "$options": "i"}}
}

func (r *commerceRepo) ListVenues(ctx context.Context, limit int64) ([]*models.Venue, error) {
	return findAll[models.Venue](ctx, r.venues, bson.M{}, options.Find().SetLimit(limit))
}

func (r *commerceRepo) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	return findByID[models.Venue](ctx, r.venues, id)
}

func (r *commerceRepo) SearchVenues(ctx context.Context, q string, limit int64) ([]*models.Venue, error) {
	return findAll[models.Venue](ctx, r.venues, nameSearch(q), options.Find().SetLimit(limit))
}

func (r *commerceRepo) InsertOrder(ctx context.Context, o *models.Order) error {
	_, err := r.orders.InsertOne(ctx, o)
	return err
}

func (r *commerceRepo) ListOrders(ctx context.Context, userID string, limit int64) ([]*models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return findAll[models.Order](ctx, r.orders, bson.M{"userId": userID}, opts)
}

func (r *commerceRepo) ListEvents(ctx context.Context, limit int64) ([]*models.Event, error) {
	return findAll[models.Event](ctx, r.events, bson.M{}, options.Find().SetLimit(limit))
}

func (r *commerceRepo) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return findByID[models.Event](ctx, r.events, id)
}

func (r *commerceRepo) SearchEvents(ctx context.Context, q string, limit int64) ([]*models.Event, error) {
	return findAll[models.Event](ctx, r.events, nameSearch(q), options.Find().SetLimit(limit))
}

func (r *commerceRepo) InsertTicket(ctx context.Context, t *models.Ticket) error {
	_, err := r.tickets.InsertOne(ctx, t)
	return err
}

func (r *commerceRepo) ListTickets(ctx context.Context, userID string) ([]*models.Ticket, error) {
	return findAll[models.Ticket](ctx, r.tickets, bson.M{"purchaserId": userID})
}

func (r *commerceRepo) ListCreators(ctx context.Context, limit int64) ([]*models.Creator, error) {
	return findAll[models.Creator](ctx, r.creators, bson.M{}, options.Find().SetLimit(limit))
}

func (r *commerceRepo) GetCreator(ctx context.Context, id string) (*models.Creator, error) {
	return findByID[models.Creator](ctx, r.creators, id)
}

func (r *commerceRepo) SearchCreators(ctx context.Context, q string, limit int64) ([]*models.Creator, error) {
	filter := bson.M{"displayName": bson.M{"$regex": q, "$options": "i"}}
	return findAll[models.Creator](ctx, r.creators, filter, options.Find().SetLimit(limit))
}
