package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

// SeedService wipes and repopulates the database with demo data. It works on
// the raw collections because it replaces whole datasets, not single documents.
type SeedService struct {
	mongo  *repository.Mongo
	logger *zap.SugaredLogger
}

func NewSeedService(m *repository.Mongo, logger *zap.SugaredLogger) *SeedService {
	return &SeedService{mongo: m, logger: logger}
}

func avatarFor(handle string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + handle
}

// Reset drops all application data and inserts the demo dataset. Returns
// per-entity insert counts.
func (s *SeedService) Reset(ctx context.Context) (map[string]int, error) {
	m := s.mongo
	all := []*mongo.Collection{
		m.Users, m.Credentials, m.FriendReqs, m.Friendships, m.Blocks, m.Mutes,
		m.Threads, m.Messages, m.Reads, m.Notifications,
		m.Posts, m.Reels, m.Tribes, m.Comments,
		m.Venues, m.Orders, m.Events, m.Tickets, m.Creators, m.WalletTxs,
	}
	for _, col := range all {
		if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := []*models.User{
		{ID: "u_aryan", Handle: "aryan", Name: "Aryan Mehta", Avatar: avatarFor("aryan"), Bio: "Night owl. Coffee first.", KYCTier: 2, Language: "en", Interests: []string{"music", "food"}, ConsentGiven: true, WalletBalance: 250, CreatedAt: now},
		{ID: "u_meera", Handle: "meera", Name: "Meera Pillai", Avatar: avatarFor("meera"), Bio: "Reel life > real life", KYCTier: 1, Language: "en", Interests: []string{"dance", "travel"}, ConsentGiven: true, WalletBalance: 120, CreatedAt: now},
		{ID: "u_kabir", Handle: "kabir", Name: "Kabir Shah", Avatar: avatarFor("kabir"), Bio: "Weekend DJ", KYCTier: 1, Language: "hi", Interests: []string{"edm", "gaming"}, ConsentGiven: true, WalletBalance: 75, CreatedAt: now},
	}
	for _, u := range users {
		if _, err := m.Users.InsertOne(ctx, u); err != nil {
			return nil, err
		}
		cred := &models.Credential{Handle: u.Handle, UserID: u.ID, PasswordHash: string(hash), CreatedAt: now}
		if _, err := m.Credentials.InsertOne(ctx, cred); err != nil {
			return nil, err
		}
	}

	// aryan and meera are friends with an open DM thread
	if _, err := m.Friendships.InsertOne(ctx, &models.Friendship{UserID1: "u_aryan", UserID2: "u_meera", CreatedAt: now}); err != nil {
		return nil, err
	}
	thread := &models.DMThread{ID: "t_aryan_meera", User1ID: "u_aryan", User2ID: "u_meera", CreatedAt: now, LastMessageAt: now}
	if _, err := m.Threads.InsertOne(ctx, thread); err != nil {
		return nil, err
	}
	msgs := []*models.DMMessage{
		{ID: uuid.New().String(), ThreadID: thread.ID, SenderID: "u_aryan", Text: "Yo, that rooftop place tonight?", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New().String(), ThreadID: thread.ID, SenderID: "u_meera", Text: "Only if they still do the 2-for-1", CreatedAt: now.Add(-90 * time.Minute)},
	}
	for _, msg := range msgs {
		if _, err := m.Messages.InsertOne(ctx, msg); err != nil {
			return nil, err
		}
	}
	// kabir has a pending request to aryan
	if _, err := m.FriendReqs.InsertOne(ctx, &models.FriendRequest{
		ID: uuid.New().String(), FromUserID: "u_kabir", ToUserID: "u_aryan",
		Status: models.FriendRequestPending, CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	posts := []*models.Post{
		{ID: uuid.New().String(), AuthorID: "u_aryan", Text: "Found the best filter coffee in Indiranagar. Not telling where.", Audience: "public", Stats: models.PostStats{Likes: 1}, LikedBy: []string{"u_meera"}, RepostedBy: []string{}, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: uuid.New().String(), AuthorID: "u_meera", Text: "Sunset at the lake hit different today", Audience: "public", LikedBy: []string{}, RepostedBy: []string{}, CreatedAt: now.Add(-time.Hour)},
	}
	for _, p := range posts {
		if _, err := m.Posts.InsertOne(ctx, p); err != nil {
			return nil, err
		}
	}

	reel := &models.Reel{
		ID: uuid.New().String(), AuthorID: "u_meera",
		VideoURL: "https://cdn.example.com/reels/lake-sunset.mp4",
		Thumb:    "https://cdn.example.com/reels/lake-sunset.jpg",
		Caption:  "golden hour", Stats: models.ReelStats{Views: 42, Likes: 2},
		LikedBy: []string{"u_aryan", "u_kabir"}, CreatedAt: now.Add(-30 * time.Minute),
	}
	if _, err := m.Reels.InsertOne(ctx, reel); err != nil {
		return nil, err
	}

	tribes := []*models.Tribe{
		{ID: uuid.New().String(), Name: "Midnight Foodies", Tags: []string{"food", "latenight"}, Type: "public", Description: "Post-midnight food runs", OwnerID: "u_aryan", Members: []string{"u_aryan", "u_meera"}, MemberCount: 2, CreatedAt: now},
		{ID: uuid.New().String(), Name: "Bass Heads", Tags: []string{"edm", "music"}, Type: "public", Description: "Drops only", OwnerID: "u_kabir", Members: []string{"u_kabir"}, MemberCount: 1, CreatedAt: now},
	}
	for _, t := range tribes {
		if _, err := m.Tribes.InsertOne(ctx, t); err != nil {
			return nil, err
		}
	}

	venue := &models.Venue{
		ID: uuid.New().String(), Name: "Cloud Nine Rooftop",
		Description: "Rooftop bar with a skyline view", Avatar: avatarFor("cloudnine"),
		Location: "Indiranagar", Rating: 4.5,
		MenuItems: []models.MenuItem{
			{ID: uuid.New().String(), Name: "Smash Burger", Price: 320},
			{ID: uuid.New().String(), Name: "Masala Fries", Price: 180},
			{ID: uuid.New().String(), Name: "Cold Brew", Price: 220},
		},
		CreatedAt: now,
	}
	if _, err := m.Venues.InsertOne(ctx, venue); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID: uuid.New().String(), Name: "Neon Nights Vol. 3",
		Description: "Warehouse EDM night", Image: "https://cdn.example.com/events/neon3.jpg",
		Date: now.AddDate(0, 0, 14).Format("2006-01-02"), Location: "Whitefield",
		Tiers: []models.EventTier{
			{Name: "regular", Price: 499},
			{Name: "vip", Price: 1499},
		},
		VibeMeter: 87, CreatedAt: now,
	}
	if _, err := m.Events.InsertOne(ctx, event); err != nil {
		return nil, err
	}

	creator := &models.Creator{
		ID: uuid.New().String(), UserID: "u_kabir", DisplayName: "DJ Kabir",
		Avatar: avatarFor("djkabir"), Bio: "Bookings open",
		Items: []models.CreatorItem{
			{ID: uuid.New().String(), Name: "Custom mix", Type: "digital", Price: 999},
			{ID: uuid.New().String(), Name: "House party set", Type: "booking", Price: 7999},
		},
		Followers: 1200, CreatedAt: now,
	}
	if _, err := m.Creators.InsertOne(ctx, creator); err != nil {
		return nil, err
	}

	return map[string]int{
		"users":   len(users),
		"threads": 1, "messages": len(msgs), "friendRequests": 1,
		"posts": len(posts), "reels": 1, "tribes": len(tribes),
		"venues": 1, "events": 1, "creators": 1,
	}, nil
}
