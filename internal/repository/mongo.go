package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/config"
)

// Mongo owns the client and the collection handles every repository uses.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database

	Users         *mongo.Collection
	Credentials   *mongo.Collection
	FriendReqs    *mongo.Collection
	Friendships   *mongo.Collection
	Blocks        *mongo.Collection
	Mutes         *mongo.Collection
	Threads       *mongo.Collection
	Messages      *mongo.Collection
	Reads         *mongo.Collection
	Notifications *mongo.Collection
	Posts         *mongo.Collection
	Reels         *mongo.Collection
	Tribes        *mongo.Collection
	Comments      *mongo.Collection
	Venues        *mongo.Collection
	Orders        *mongo.Collection
	Events        *mongo.Collection
	Tickets       *mongo.Collection
	Creators      *mongo.Collection
	WalletTxs     *mongo.Collection
}

func NewMongo(cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Mongo.Database)
	m := &Mongo{
		Client:        client,
		DB:            db,
		Users:         db.Collection("users"),
		Credentials:   db.Collection("credentials"),
		FriendReqs:    db.Collection("friend_requests"),
		Friendships:   db.Collection("friendships"),
		Blocks:        db.Collection("blocks"),
		Mutes:         db.Collection("mutes"),
		Threads:       db.Collection("dm_threads"),
		Messages:      db.Collection("dm_messages"),
		Reads:         db.Collection("message_reads"),
		Notifications: db.Collection("notifications"),
		Posts:         db.Collection("posts"),
		Reels:         db.Collection("reels"),
		Tribes:        db.Collection("tribes"),
		Comments:      db.Collection("comments"),
		Venues:        db.Collection("venues"),
		Orders:        db.Collection("orders"),
		Events:        db.Collection("events"),
		Tickets:       db.Collection("tickets"),
		Creators:      db.Collection("creators"),
		WalletTxs:     db.Collection("wallet_transactions"),
	}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	specs := []struct {
		col  *mongo.Collection
		keys bson.D
		opts *options.IndexOptions
	}{
		{m.Users, bson.D{{Key: "handle", Value: 1}}, unique},
		{m.Users, bson.D{{Key: "id", Value: 1}}, unique},
		{m.Credentials, bson.D{{Key: "handle", Value: 1}}, unique},
		// one edge per canonical pair, one thread per canonical pair
		{m.Friendships, bson.D{{Key: "userId1", Value: 1}, {Key: "userId2", Value: 1}}, unique},
		{m.Threads, bson.D{{Key: "user1Id", Value: 1}, {Key: "user2Id", Value: 1}}, unique},
		{m.Reads, bson.D{{Key: "threadId", Value: 1}, {Key: "userId", Value: 1}}, unique},
		{m.Messages, bson.D{{Key: "threadId", Value: 1}, {Key: "createdAt", Value: -1}}, nil},
		{m.FriendReqs, bson.D{{Key: "fromUserId", Value: 1}, {Key: "toUserId", Value: 1}, {Key: "status", Value: 1}}, nil},
		{m.Notifications, bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}, nil},
	}
	for _, s := range specs {
		model := mongo.IndexModel{Keys: s.keys}
		if s.opts != nil {
			model.Options = s.opts
		}
		if _, err := s.col.Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
