package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

// BlockRepository covers both directed relations of the registry: blocks and
// mutes.
type BlockRepository interface {
	CreateBlock(ctx context.Context, blockerID, blockedID string) error
	DeleteBlock(ctx context.Context, blockerID, blockedID string) (bool, error)
	IsBlocked(ctx context.Context, blockerID, blockedID string) (bool, error)
	ListBlocks(ctx context.Context, blockerID string) ([]*models.UserBlock, error)

	CreateMute(ctx context.Context, muterID, mutedID string) error
	DeleteMute(ctx context.Context, muterID, mutedID string) (bool, error)
	IsMuted(ctx context.Context, muterID, mutedID string) (bool, error)
	ListMutes(ctx context.Context, muterID string) ([]*models.UserMute, error)
}

type blockRepo struct {
	blocks *mongo.Collection
	mutes  *mongo.Collection
}

func NewBlockRepository(m *Mongo) BlockRepository {
	return &blockRepo{blocks: m.Blocks, mutes: m.Mutes}
}

func (r *blockRepo) CreateBlock(ctx context.Context, blockerID, blockedID string) error {
	// upsert keeps the operation idempotent
	_, err := r.blocks.UpdateOne(ctx,
		bson.M{"blockerId": blockerID, "blockedId": blockedID},
		bson.M{"$setOnInsert": models.UserBlock{
			BlockerID: blockerID,
			BlockedID: blockedID,
			CreatedAt: time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *blockRepo) DeleteBlock(ctx context.Context, blockerID, blockedID string) (bool, error) {
	res, err := r.blocks.DeleteOne(ctx, bson.M{"blockerId": blockerID, "blockedId": blockedID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *blockRepo) IsBlocked(ctx context.Context, blockerID, blockedID string) (bool, error) {
	n, err := r.blocks.CountDocuments(ctx, bson.M{"blockerId": blockerID, "blockedId": blockedID})
	return n > 0, err
}

func (r *blockRepo) ListBlocks(ctx context.Context, blockerID string) ([]*models.UserBlock, error) {
	cur, err := r.blocks.Find(ctx, bson.M{"blockerId": blockerID})
	if err != nil {
		return nil, err
	}
	var out []*models.UserBlock
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *blockRepo) CreateMute(ctx context.Context, muterID, mutedID string) error {
	_, err := r.mutes.UpdateOne(ctx,
		bson.M{"muterId": muterID, "mutedId": mutedID},
		bson.M{"$setOnInsert": models.UserMute{
			MuterID:   muterID,
			MutedID:   mutedID,
			CreatedAt: time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *blockRepo) DeleteMute(ctx context.Context, muterID, mutedID string) (bool, error) {
	res, err := r.mutes.DeleteOne(ctx, bson.M{"muterId": muterID, "mutedId": mutedID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *blockRepo) IsMuted(ctx context.Context, muterID, mutedID string) (bool, error) {
	n, err := r.mutes.CountDocuments(ctx, bson.M{"muterId": muterID, "mutedId": mutedID})
	return n > 0, err
}

func (r *blockRepo) ListMutes(ctx context.Context, muterID string) ([]*models.UserMute, error) {
	cur, err := r.mutes.Find(ctx, bson.M{"muterId": muterID})
	if err != nil {
		return nil, err
	}
	var out []*models.UserMute
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
