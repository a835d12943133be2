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

type DMRepository interface {
	CreateThread(ctx context.Context, t *models.DMThread) error
	GetThread(ctx context.Context, id string) (*models.DMThread, error)
	GetThreadByPair(ctx context.Context, a, b string) (*models.DMThread, error)
	ListThreads(ctx context.Context, userID string, skip, limit int64) ([]*models.DMThread, error)
	TouchThread(ctx context.Context, id string, at time.Time) error

	InsertMessage(ctx context.Context, m *models.DMMessage) error
	GetMessage(ctx context.Context, id string) (*models.DMMessage, error)
	UpdateMessageText(ctx context.Context, id, text string, editedAt time.Time) error
	SoftDeleteMessage(ctx context.Context, id string, deletedAt time.Time) error
	ListMessages(ctx context.Context, threadID string, before time.Time, limit int64) ([]*models.DMMessage, error)
	LastMessage(ctx context.Context, threadID string) (*models.DMMessage, error)
	CountUnread(ctx context.Context, threadID, peerID string, after time.Time) (int64, error)

	UpsertRead(ctx context.Context, r *models.MessageRead) error
	GetRead(ctx context.Context, threadID, userID string) (*models.MessageRead, error)
}

type dmRepo struct {
	threads  *mongo.Collection
	messages *mongo.Collection
	reads    *mongo.Collection
}

func NewDMRepository(m *Mongo) DMRepository {
	return &dmRepo{threads: m.Threads, messages: m.Messages, reads: m.Reads}
}

func (r *dmRepo) CreateThread(ctx context.Context, t *models.DMThread) error {
	_, err := r.threads.InsertOne(ctx, t)
	return err
}

func (r *dmRepo) GetThread(ctx context.Context, id string) (*models.DMThread, error) {
	var t models.DMThread
	err := r.threads.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *dmRepo) GetThreadByPair(ctx context.Context, a, b string) (*models.DMThread, error) {
	u1, u2 := models.CanonicalPair(a, b)
	var t models.DMThread
	err := r.threads.FindOne(ctx, bson.M{"user1Id": u1, "user2Id": u2}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *dmRepo) ListThreads(ctx context.Context, userID string, skip, limit int64) ([]*models.DMThread, error) {
	filter := bson.M{"$or": []bson.M{{"user1Id": userID}, {"user2Id": userID}}}
	opts := options.Find().
		SetSort(bson.D{{Key: "lastMessageAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.threads.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []*models.DMThread
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dmRepo) TouchThread(ctx context.Context, id string, at time.Time) error {
	_, err := r.threads.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"lastMessageAt": at}})
	return err
}

func (r *dmRepo) InsertMessage(ctx context.Context, m *models.DMMessage) error {
	_, err := r.messages.InsertOne(ctx, m)
	return err
}

func (r *dmRepo) GetMessage(ctx context.Context, id string) (*models.DMMessage, error) {
	var m models.DMMessage
	err := r.messages.FindOne(ctx, bson.M{"id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *dmRepo) UpdateMessageText(ctx context.Context, id, text string, editedAt time.Time) error {
	res, err := r.messages.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"text":     text,
		"editedAt": editedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *dmRepo) SoftDeleteMessage(ctx context.Context, id string, deletedAt time.Time) error {
	res, err := r.messages.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"deletedAt": deletedAt}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// ListMessages fetches newest-first up to limit, optionally older than before;
// soft-deleted messages are excluded. Callers reverse the page for
// chronological order.
func (r *dmRepo) ListMessages(ctx context.Context, threadID string, before time.Time, limit int64) ([]*models.DMMessage, error) {
	filter := bson.M{"threadId": threadID, "deletedAt": bson.M{"$exists": false}}
	if !before.IsZero() {
		filter["createdAt"] = bson.M{"$lt": before}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cur, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []*models.DMMessage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dmRepo) LastMessage(ctx context.Context, threadID string) (*models.DMMessage, error) {
	var m models.DMMessage
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.messages.FindOne(ctx, bson.M{
		"threadId":  threadID,
		"deletedAt": bson.M{"$exists": false},
	}, opts).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CountUnread counts non-deleted messages from peerID newer than after.
func (r *dmRepo) CountUnread(ctx context.Context, threadID, peerID string, after time.Time) (int64, error) {
	filter := bson.M{
		"threadId":  threadID,
		"senderId":  peerID,
		"deletedAt": bson.M{"$exists": false},
	}
	if !after.IsZero() {
		filter["createdAt"] = bson.M{"$gt": after}
	}
	return r.messages.CountDocuments(ctx, filter)
}

func (r *dmRepo) UpsertRead(ctx context.Context, mr *models.MessageRead) error {
	_, err := r.reads.UpdateOne(ctx,
		bson.M{"threadId": mr.ThreadID, "userId": mr.UserID},
		bson.M{"$set": bson.M{
			"lastReadMessageId": mr.LastReadMessageID,
			"readAt":            mr.ReadAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *dmRepo) GetRead(ctx context.Context, threadID, userID string) (*models.MessageRead, error) {
	var mr models.MessageRead
	err := r.reads.FindOne(ctx, bson.M{"threadId": threadID, "userId": userID}).Decode(&mr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &mr, nil
}
