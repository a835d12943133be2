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

type SocialService struct {
	users      repository.UserRepository
	social     repository.SocialRepository
	dispatcher *events.Dispatcher
	logger     *zap.SugaredLogger
}

func NewSocialService(
	users repository.UserRepository,
	social repository.SocialRepository,
	dispatcher *events.Dispatcher,
	logger *zap.SugaredLogger,
) *SocialService {
	return &SocialService{users: users, social: social, dispatcher: dispatcher, logger: logger}
}

func (s *SocialService) author(ctx context.Context, id string) *models.User {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil
	}
	return u
}

func (s *SocialService) CreatePost(ctx context.Context, authorID, text, media, audience string) (*models.Post, error) {
	if text == "" && media == "" {
		return nil, apperrors.InvalidArg("post needs text or media")
	}
	if audience == "" {
		audience = "public"
	}
	p := &models.Post{
		ID:         uuid.New().String(),
		AuthorID:   authorID,
		Text:       text,
		Media:      media,
		Audience:   audience,
		LikedBy:    []string{},
		RepostedBy: []string{},
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.social.InsertPost(ctx, p); err != nil {
		return nil, err
	}
	p.Author = s.author(ctx, authorID)
	return p, nil
}

func (s *SocialService) ListPosts(ctx context.Context, limit int64) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	posts, err := s.social.ListPosts(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.Author = s.author(ctx, p.AuthorID)
	}
	return posts, nil
}

func (s *SocialService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.social.GetPost(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	p.Author = s.author(ctx, p.AuthorID)
	return p, nil
}

// ToggleLikePost likes or unlikes depending on current membership; liking
// someone else's post notifies the author.
func (s *SocialService) ToggleLikePost(ctx context.Context, postID, userID string) (string, *models.Post, error) {
	p, err := s.social.GetPost(ctx, postID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return "", nil, apperrors.ErrPostNotFound
		}
		return "", nil, err
	}
	action := "liked"
	if contains(p.LikedBy, userID) {
		p.LikedBy = remove(p.LikedBy, userID)
		action = "unliked"
	} else {
		p.LikedBy = append(p.LikedBy, userID)
	}
	p.Stats.Likes = len(p.LikedBy)
	if err := s.social.SetPostEngagement(ctx, p.ID, p.LikedBy, p.RepostedBy, p.Stats); err != nil {
		return "", nil, err
	}
	if action == "liked" && p.AuthorID != userID {
		s.dispatcher.Dispatch(ctx, events.Notify{Notification: &models.Notification{
			ID:        uuid.New().String(),
			UserID:    p.AuthorID,
			Type:      models.NotifPostLike,
			Payload:   map[string]any{"postId": p.ID, "fromUserId": userID},
			CreatedAt: time.Now().UTC(),
		}})
	}
	return action, p, nil
}

func (s *SocialService) ToggleRepost(ctx context.Context, postID, userID string) (string, *models.Post, error) {
	p, err := s.social.GetPost(ctx, postID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return "", nil, apperrors.ErrPostNotFound
		}
		return "", nil, err
	}
	action := "reposted"
	if contains(p.RepostedBy, userID) {
		p.RepostedBy = remove(p.RepostedBy, userID)
		action = "unreposted"
	} else {
		p.RepostedBy = append(p.RepostedBy, userID)
	}
	p.Stats.Reposts = len(p.RepostedBy)
	if err := s.social.SetPostEngagement(ctx, p.ID, p.LikedBy, p.RepostedBy, p.Stats); err != nil {
		return "", nil, err
	}
	return action, p, nil
}

func (s *SocialService) CreatePostComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, apperrors.InvalidArg("comment text is required")
	}
	if _, err := s.social.GetPost(ctx, postID); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	c := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.social.InsertComment(ctx, c); err != nil {
		return nil, err
	}
	if err := s.social.IncPostReplies(ctx, postID); err != nil {
		s.logger.Warnw("reply counter bump failed", "postId", postID, "error", err)
	}
	c.Author = s.author(ctx, authorID)
	return c, nil
}

func (s *SocialService) ListPostComments(ctx context.Context, postID string, limit int64) ([]*models.Comment, error) {
	return s.listComments(ctx, "postId", postID, limit)
}

func (s *SocialService) CreateReel(ctx context.Context, authorID, videoURL, thumb, caption string) (*models.Reel, error) {
	if videoURL == "" {
		return nil, apperrors.InvalidArg("videoUrl is required")
	}
	r := &models.Reel{
		ID:        uuid.New().String(),
		AuthorID:  authorID,
		VideoURL:  videoURL,
		Thumb:     thumb,
		Caption:   caption,
		LikedBy:   []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.social.InsertReel(ctx, r); err != nil {
		return nil, err
	}
	r.Author = s.author(ctx, authorID)
	return r, nil
}

func (s *SocialService) ListReels(ctx context.Context, limit int64) ([]*models.Reel, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	reels, err := s.social.ListReels(ctx, limit)
	if err != nil {
		return nil, err
	}
	for _, r := range reels {
		r.Author = s.author(ctx, r.AuthorID)
	}
	return reels, nil
}

func (s *SocialService) ToggleLikeReel(ctx context.Context, reelID, userID string) (string, *models.Reel, error) {
	r, err := s.social.GetReel(ctx, reelID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return "", nil, apperrors.ErrReelNotFound
		}
		return "", nil, err
	}
	action := "liked"
	if contains(r.LikedBy, userID) {
		r.LikedBy = remove(r.LikedBy, userID)
		action = "unliked"
	} else {
		r.LikedBy = append(r.LikedBy, userID)
	}
	r.Stats.Likes = len(r.LikedBy)
	if err := s.social.SetReelEngagement(ctx, r.ID, r.LikedBy, r.Stats); err != nil {
		return "", nil, err
	}
	return action, r, nil
}

func (s *SocialService) ViewReel(ctx context.Context, reelID string) error {
	return s.social.IncReelViews(ctx, reelID)
}

func (s *SocialService) CreateReelComment(ctx context.Context, reelID, authorID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, apperrors.InvalidArg("comment text is required")
	}
	if _, err := s.social.GetReel(ctx, reelID); err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrReelNotFound
		}
		return nil, err
	}
	c := &models.Comment{
		ID:        uuid.New().String(),
		ReelID:    reelID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.social.InsertComment(ctx, c); err != nil {
		return nil, err
	}
	if err := s.social.IncReelComments(ctx, reelID); err != nil {
		s.logger.Warnw("comment counter bump failed", "reelId", reelID, "error", err)
	}
	c.Author = s.author(ctx, authorID)
	return c, nil
}

func (s *SocialService) ListReelComments(ctx context.Context, reelID string, limit int64) ([]*models.Comment, error) {
	return s.listComments(ctx, "reelId", reelID, limit)
}

func (s *SocialService) listComments(ctx context.Context, field, id string, limit int64) ([]*models.Comment, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	comments, err := s.social.ListComments(ctx, field, id, limit)
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		c.Author = s.author(ctx, c.AuthorID)
	}
	return comments, nil
}

func (s *SocialService) CreateTribe(ctx context.Context, ownerID, name, description, tribeType string, tags []string) (*models.Tribe, error) {
	if name == "" {
		return nil, apperrors.InvalidArg("tribe name is required")
	}
	if tribeType == "" {
		tribeType = "public"
	}
	if tags == nil {
		tags = []string{}
	}
	t := &models.Tribe{
		ID:          uuid.New().String(),
		Name:        name,
		Tags:        tags,
		Type:        tribeType,
		Description: description,
		OwnerID:     ownerID,
		Members:     []string{ownerID},
		MemberCount: 1,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.social.InsertTribe(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SocialService) ListTribes(ctx context.Context, limit int64) ([]*models.Tribe, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.social.ListTribes(ctx, limit)
}

func (s *SocialService) GetTribe(ctx context.Context, id string) (*models.Tribe, error) {
	t, err := s.social.GetTribe(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, apperrors.ErrTribeNotFound
		}
		return nil, err
	}
	return t, nil
}

// JoinTribe is idempotent; joining someone else's tribe notifies the owner.
func (s *SocialService) JoinTribe(ctx context.Context, tribeID, userID string) (*models.Tribe, error) {
	t, err := s.GetTribe(ctx, tribeID)
	if err != nil {
		return nil, err
	}
	if contains(t.Members, userID) {
		return t, nil
	}
	t.Members = append(t.Members, userID)
	t.MemberCount = len(t.Members)
	if err := s.social.SetTribeMembers(ctx, t.ID, t.Members); err != nil {
		return nil, err
	}
	if t.OwnerID != userID {
		s.dispatcher.Dispatch(ctx, events.Notify{Notification: &models.Notification{
			ID:        uuid.New().String(),
			UserID:    t.OwnerID,
			Type:      models.NotifTribeJoin,
			Payload:   map[string]any{"tribeId": t.ID, "userId": userID},
			CreatedAt: time.Now().UTC(),
		}})
	}
	return t, nil
}

// ListTribePosts returns recent posts authored by the tribe's current members.
func (s *SocialService) ListTribePosts(ctx context.Context, tribeID string, limit int64) ([]*models.Post, error) {
	t, err := s.GetTribe(ctx, tribeID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	posts, err := s.social.ListPostsByAuthors(ctx, t.Members, limit)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.Author = s.author(ctx, p.AuthorID)
	}
	return posts, nil
}

func (s *SocialService) LeaveTribe(ctx context.Context, tribeID, userID string) (*models.Tribe, error) {
	t, err := s.GetTribe(ctx, tribeID)
	if err != nil {
		return nil, err
	}
	if !contains(t.Members, userID) {
		return t, nil
	}
	t.Members = remove(t.Members, userID)
	t.MemberCount = len(t.Members)
	if err := s.social.SetTribeMembers(ctx, t.ID, t.Members); err != nil {
		return nil, err
	}
	return t, nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func remove(xs []string, x string) []string {
	out := xs[:0]
	for _, v := range xs {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}
