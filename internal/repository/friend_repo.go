package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

type FriendRepository interface {
	CreateRequest(ctx context.Context, fr *models.FriendRequest) error
	GetRequest(ctx context.Context, id string) (*models.FriendRequest, error)
	PendingRequestExists(ctx context.Context, fromID, toID string) (bool, error)
	ListRequests(ctx context.Context, userID string) ([]*models.FriendRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status models.FriendRequestStatus, decidedAt time.Time) error
	CancelPendingBetween(ctx context.Context, a, b string, decidedAt time.Time) error

	CreateFriendship(ctx context.Context, a, b string) error
	DeleteFriendship(ctx context.Context, a, b string) error
	AreFriends(ctx context.Context, a, b string) (bool, error)
	ListFriendIDs(ctx context.Context, userID string) ([]string, error)
}

type friendRepo struct {
	requests *mongo.Collection
	edges    *mongo.Collection
}

func NewFriendRepository(m *Mongo) FriendRepository {
	return &friendRepo{requests: m.FriendReqs, edges: m.Friendships}
}

func (r *friendRepo) CreateRequest(ctx context.Context, fr *models.FriendRequest) error {
	_, err := r.requests.InsertOne(ctx, fr)
	return err
}

func (r *friendRepo) GetRequest(ctx context.Context, id string) (*models.FriendRequest, error) {
	var fr models.FriendRequest
	err := r.requests.FindOne(ctx, bson.M{"id": id}).Decode(&fr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

// PendingRequestExists checks the exact (from,to) pair only; the opposite
// direction is deliberately not consulted (see DESIGN.md).
func (r *friendRepo) PendingRequestExists(ctx context.Context, fromID, toID string) (bool, error) {
	n, err := r.requests.CountDocuments(ctx, bson.M{
		"fromUserId": fromID,
		"toUserId":   toID,
		"status":     models.FriendRequestPending,
	})
	return n > 0, err
}

func (r *friendRepo) ListRequests(ctx context.Context, userID string) ([]*models.FriendRequest, error) {
	filter := bson.M{"$or": []bson.M{{"fromUserId": userID}, {"toUserId": userID}}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.requests.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []*models.FriendRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *friendRepo) UpdateRequestStatus(ctx context.Context, id string, status models.FriendRequestStatus, decidedAt time.Time) error {
	res, err := r.requests.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"decidedAt": decidedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// CancelPendingBetween cancels pending requests in both directions; used by the
// block cascade.
func (r *friendRepo) CancelPendingBetween(ctx context.Context, a, b string, decidedAt time.Time) error {
	_, err := r.requests.UpdateMany(ctx, bson.M{
		"status": models.FriendRequestPending,
		"$or": []bson.M{
			{"fromUserId": a, "toUserId": b},
			{"fromUserId": b, "toUserId": a},
		},
	}, bson.M{"$set": bson.M{
		"status":    models.FriendRequestCancelled,
		"decidedAt": decidedAt,
	}})
	return err
}

func (r *friendRepo) CreateFriendship(ctx context.Context, a, b string) error {
	u1, u2 := models.CanonicalPair(a, b)
	_, err := r.edges.InsertOne(ctx, models.Friendship{
		UserID1:   u1,
		UserID2:   u2,
		CreatedAt: time.Now().UTC(),
	})
	return err
}

func (r *friendRepo) DeleteFriendship(ctx context.Context, a, b string) error {
	u1, u2 := models.CanonicalPair(a, b)
	_, err := r.edges.DeleteOne(ctx, bson.M{"userId1": u1, "userId2": u2})
	return err
}

func (r *friendRepo) AreFriends(ctx context.Context, a, b string) (bool, error) {
	u1, u2 := models.CanonicalPair(a, b)
	n, err := r.edges.CountDocuments(ctx, bson.M{"userId1": u1, "userId2": u2})
	return n > 0, err
}

func (r *friendRepo) ListFriendIDs(ctx context.Context, userID string) ([]string, error) {
	filter := bson.M{"$or": []bson.M{{"userId1": userID}, {"userId2": userID}}}
	cur, err := r.edges.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var edges []models.Friendship
	if err := cur.All(ctx, &edges); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.UserID1 == userID {
			ids = append(ids, e.UserID2)
		} else {
			ids = append(ids, e.UserID1)
		}
	}
	return ids, nil
}
