package service

import (
	"context"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

const searchBucketLimit = 20

// SearchResults buckets matches per entity; unrequested buckets stay empty.
type SearchResults struct {
	Posts    []*models.Post    `json:"posts"`
	Tribes   []*models.Tribe   `json:"tribes"`
	Venues   []*models.Venue   `json:"venues"`
	Events   []*models.Event   `json:"events"`
	Creators []*models.Creator `json:"creators"`
}

type SearchService struct {
	users    repository.UserRepository
	social   repository.SocialRepository
	commerce repository.CommerceRepository
}

func NewSearchService(users repository.UserRepository, social repository.SocialRepository, commerce repository.CommerceRepository) *SearchService {
	return &SearchService{users: users, social: social, commerce: commerce}
}

// Search runs a case-insensitive substring match across the requested buckets.
// filter is one of "all", "posts", "tribes", "venues", "events", "creators".
func (s *SearchService) Search(ctx context.Context, q, filter string) (*SearchResults, error) {
	res := &SearchResults{
		Posts:    []*models.Post{},
		Tribes:   []*models.Tribe{},
		Venues:   []*models.Venue{},
		Events:   []*models.Event{},
		Creators: []*models.Creator{},
	}
	if q == "" {
		return res, nil
	}
	if filter == "" {
		filter = "all"
	}
	want := func(bucket string) bool { return filter == "all" || filter == bucket }

	if want("posts") {
		posts, err := s.social.SearchPosts(ctx, q, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			if u, err := s.users.GetUser(ctx, p.AuthorID); err == nil {
				p.Author = u
			}
		}
		if posts != nil {
			res.Posts = posts
		}
	}
	if want("tribes") {
		tribes, err := s.social.SearchTribes(ctx, q, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		if tribes != nil {
			res.Tribes = tribes
		}
	}
	if want("venues") {
		venues, err := s.commerce.SearchVenues(ctx, q, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		if venues != nil {
			res.Venues = venues
		}
	}
	if want("events") {
		evs, err := s.commerce.SearchEvents(ctx, q, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		if evs != nil {
			res.Events = evs
		}
	}
	if want("creators") {
		creators, err := s.commerce.SearchCreators(ctx, q, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		if creators != nil {
			res.Creators = creators
		}
	}
	return res, nil
}
