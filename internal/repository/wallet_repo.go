package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

type WalletRepository interface {
	InsertTransaction(ctx context.Context, tx *models.WalletTransaction) error
	ListTransactions(ctx context.Context, userID string, limit int64) ([]*models.WalletTransaction, error)
}

type walletRepo struct {
	txs *mongo.Collection
}

func NewWalletRepository(m *Mongo) WalletRepository {
	return &walletRepo{txs: m.WalletTxs}
}

func (r *walletRepo) InsertTransaction(ctx context.Context, tx *models.WalletTransaction) error {
	_, err := r.txs.InsertOne(ctx, tx)
	return err
}

func (r *walletRepo) ListTransactions(ctx context.Context, userID string, limit int64) ([]*models.WalletTransaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cur, err := r.txs.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	var out []*models.WalletTransaction
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
