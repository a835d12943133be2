package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

// ErrNoDocument is the storage-level not-found signal; services translate it
// into the API error taxonomy.
var ErrNoDocument = errors.New("document not found")

type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) error
	CompleteOnboarding(ctx context.Context, id string, ob models.Onboarding) error
	IncrementWallet(ctx context.Context, id string, delta float64) error
	FindUsersIn(ctx context.Context, ids []string, q string, skip, limit int64) ([]*models.User, error)
	CreateCredential(ctx context.Context, c *models.Credential) error
	GetCredential(ctx context.Context, handle string) (*models.Credential, error)
}

type userRepo struct {
	users *mongo.Collection
	creds *mongo.Collection
}

func NewUserRepository(m *Mongo) UserRepository {
	return &userRepo{users: m.Users, creds: m.Credentials}
}

func (r *userRepo) CreateUser(ctx context.Context, u *models.User) error {
	_, err := r.users.InsertOne(ctx, u)
	return err
}

func (r *userRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	var u models.User
	err := r.users.FindOne(ctx, bson.M{"handle": handle}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) error {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *userRepo) CompleteOnboarding(ctx context.Context, id string, ob models.Onboarding) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"language":     ob.Language,
		"interests":    ob.Interests,
		"consentGiven": ob.ConsentGiven,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *userRepo) IncrementWallet(ctx context.Context, id string, delta float64) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"walletBalance": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *userRepo) FindUsersIn(ctx context.Context, ids []string, q string, skip, limit int64) ([]*models.User, error) {
	filter := bson.M{"id": bson.M{"$in": ids}}
	if q != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"handle": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetSkip(skip).SetLimit(limit)
	cur, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []*models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) CreateCredential(ctx context.Context, c *models.Credential) error {
	_, err := r.creds.InsertOne(ctx, c)
	return err
}

func (r *userRepo) GetCredential(ctx context.Context, handle string) (*models.Credential, error) {
	var c models.Credential
	err := r.creds.FindOne(ctx, bson.M{"handle": handle}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
