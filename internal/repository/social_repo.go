package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

type SocialRepository interface {
	InsertPost(ctx context.Context, p *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	ListPosts(ctx context.Context, limit int64) ([]*models.Post, error)
	ListPostsByAuthors(ctx context.Context, authorIDs []string, limit int64) ([]*models.Post, error)
	SetPostEngagement(ctx context.Context, id string, likedBy []string, repostedBy []string, stats models.PostStats) error
	IncPostReplies(ctx context.Context, id string) error
	SearchPosts(ctx context.Context, q string, limit int64) ([]*models.Post, error)

	InsertReel(ctx context.Context, r *models.Reel) error
	GetReel(ctx context.Context, id string) (*models.Reel, error)
	ListReels(ctx context.Context, limit int64) ([]*models.Reel, error)
	SetReelEngagement(ctx context.Context, id string, likedBy []string, stats models.ReelStats) error
	IncReelViews(ctx context.Context, id string) error
	IncReelComments(ctx context.Context, id string) error

	InsertTribe(ctx context.Context, t *models.Tribe) error
	GetTribe(ctx context.Context, id string) (*models.Tribe, error)
	ListTribes(ctx context.Context, limit int64) ([]*models.Tribe, error)
	SetTribeMembers(ctx context.Context, id string, members []string) error
	SearchTribes(ctx context.Context, q string, limit int64) ([]*models.Tribe, error)

	InsertComment(ctx context.Context, c *models.Comment) error
	ListComments(ctx context.Context, field, id string, limit int64) ([]*models.Comment, error)
}

type socialRepo struct {
	posts    *mongo.Collection
	reels    *mongo.Collection
	tribes   *mongo.Collection
	comments *mongo.Collection
}

func NewSocialRepository(m *Mongo) SocialRepository {
	return &socialRepo{posts: m.Posts, reels: m.Reels, tribes: m.Tribes, comments: m.Comments}
}

func newestFirst(limit int64) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
}

func (r *socialRepo) InsertPost(ctx context.Context, p *models.Post) error {
	_, err := r.posts.InsertOne(ctx, p)
	return err
}

func (r *socialRepo) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *socialRepo) ListPosts(ctx context.Context, limit int64) ([]*models.Post, error) {
	cur, err := r.posts.Find(ctx, bson.M{}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var out []*models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialRepo) ListPostsByAuthors(ctx context.Context, authorIDs []string, limit int64) ([]*models.Post, error) {
	cur, err := r.posts.Find(ctx, bson.M{"authorId": bson.M{"$in": authorIDs}}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var out []*models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialRepo) SetPostEngagement(ctx context.Context, id string, likedBy []string, repostedBy []string, stats models.PostStats) error {
	set := bson.M{"stats": stats}
	if likedBy != nil {
		set["likedBy"] = likedBy
	}
	if repostedBy != nil {
		set["repostedBy"] = repostedBy
	}
	res, err := r.posts.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *socialRepo) IncPostReplies(ctx context.Context, id string) error {
	_, err := r.posts.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"stats.replies": 1}})
	return err
}

func (r *socialRepo) SearchPosts(ctx context.Context, q string, limit int64) ([]*models.Post, error) {
	filter := bson.M{"text": bson.M{"$regex": q, "$options": "i"}}
	cur, err := r.posts.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var out []*models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialRepo) InsertReel(ctx context.Context, reel *models.Reel) error {
	_, err := r.reels.InsertOne(ctx, reel)
	return err
}

func (r *socialRepo) GetReel(ctx context.Context, id string) (*models.Reel, error) {
	var reel models.Reel
	err := r.reels.FindOne(ctx, bson.M{"id": id}).Decode(&reel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &reel, nil
}

func (r *socialRepo) ListReels(ctx context.Context, limit int64) ([]*models.Reel, error) {
	cur, err := r.reels.Find(ctx, bson.M{}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var out []*models.Reel
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialRepo) SetReelEngagement(ctx context.Context, id string, likedBy []string, stats models.ReelStats) error {
	res, err := r.reels.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"likedBy": likedBy,
		"stats":   stats,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *socialRepo) IncReelViews(ctx context.Context, id string) error {
	_, err := r.reels.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"stats.views": 1}})
	return err
}

func (r *socialRepo) IncReelComments(ctx context.Context, id string) error {
	_, err := r.reels.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"stats.comments": 1}})
	return err
}

func (r *socialRepo) InsertTribe(ctx context.Context, t *models.Tribe) error {
	_, err := r.tribes.InsertOne(ctx, t)
	return err
}

func (r *socialRepo) GetTribe(ctx context.Context, id string) (*models.Tribe, error) {
	var t models.Tribe
	err := r.tribes.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *socialRepo) ListTribes(ctx context.Context, limit int64) ([]*models.Tribe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "memberCount", Value: -1}}).SetLimit(limit)
	cur, err := r.tribes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []*models.Tribe
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialRepo) SetTribeMembers(ctx context.Context, id string, members []string) error {
	res, err := r.tribes.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"members":     members,
		"memberCount": len(members),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *socialRepo) SearchTribes(ctx context.Context, q string, limit int64) ([]*models.Tribe, error) {
	filter := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": q, "$options": "i"}},
		{"tags": bson.M{"$regex": q, "$options": "i"}},
	}}
	cur, err := r.tribes.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var out []*models.Tribe
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialRepo) InsertComment(ctx context.Context, c *models.Comment) error {
	_, err := r.comments.InsertOne(ctx, c)
	return err
}

// ListComments lists by parent: field is "postId" or "reelId".
func (r *socialRepo) ListComments(ctx context.Context, field, id string, limit int64) ([]*models.Comment, error) {
	cur, err := r.comments.Find(ctx, bson.M{field: id}, newestFirst(limit))
	if err != nil {
		return nil, err
	}
	var out []*models.Comment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
