package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

// In-memory repository fakes. They mirror the Mongo repositories' observable
// behavior, including ErrNoDocument signaling and canonical pair storage.

func pairKey(a, b string) string {
	u1, u2 := models.CanonicalPair(a, b)
	return u1 + "|" + u2
}

type fakeUserRepo struct {
	users map[string]*models.User
	creds map[string]*models.Credential
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}, creds: map[string]*models.Credential{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByHandle(_ context.Context, handle string) (*models.User, error) {
	for _, u := range r.users {
		if u.Handle == handle {
			return u, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id string, upd models.ProfileUpdate) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNoDocument
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	return nil
}

func (r *fakeUserRepo) CompleteOnboarding(_ context.Context, id string, ob models.Onboarding) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNoDocument
	}
	u.Language = ob.Language
	u.Interests = ob.Interests
	u.ConsentGiven = ob.ConsentGiven
	return nil
}

func (r *fakeUserRepo) IncrementWallet(_ context.Context, id string, delta float64) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNoDocument
	}
	u.WalletBalance += delta
	return nil
}

func (r *fakeUserRepo) FindUsersIn(_ context.Context, ids []string, q string, skip, limit int64) ([]*models.User, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	var out []*models.User
	for _, u := range r.users {
		if !idSet[u.ID] {
			continue
		}
		if q != "" {
			ql := strings.ToLower(q)
			if !strings.Contains(strings.ToLower(u.Name), ql) && !strings.Contains(strings.ToLower(u.Handle), ql) {
				continue
			}
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if skip >= int64(len(out)) {
		return []*models.User{}, nil
	}
	out = out[skip:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) CreateCredential(_ context.Context, c *models.Credential) error {
	r.creds[c.Handle] = c
	return nil
}

func (r *fakeUserRepo) GetCredential(_ context.Context, handle string) (*models.Credential, error) {
	c, ok := r.creds[handle]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return c, nil
}

type fakeFriendRepo struct {
	requests map[string]*models.FriendRequest
	edges    map[string]time.Time
}

func newFakeFriendRepo() *fakeFriendRepo {
	return &fakeFriendRepo{requests: map[string]*models.FriendRequest{}, edges: map[string]time.Time{}}
}

func (r *fakeFriendRepo) CreateRequest(_ context.Context, fr *models.FriendRequest) error {
	r.requests[fr.ID] = fr
	return nil
}

func (r *fakeFriendRepo) GetRequest(_ context.Context, id string) (*models.FriendRequest, error) {
	fr, ok := r.requests[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	cp := *fr
	return &cp, nil
}

func (r *fakeFriendRepo) PendingRequestExists(_ context.Context, fromID, toID string) (bool, error) {
	for _, fr := range r.requests {
		if fr.FromUserID == fromID && fr.ToUserID == toID && fr.Status == models.FriendRequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFriendRepo) ListRequests(_ context.Context, userID string) ([]*models.FriendRequest, error) {
	var out []*models.FriendRequest
	for _, fr := range r.requests {
		if fr.FromUserID == userID || fr.ToUserID == userID {
			out = append(out, fr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFriendRepo) UpdateRequestStatus(_ context.Context, id string, status models.FriendRequestStatus, decidedAt time.Time) error {
	fr, ok := r.requests[id]
	if !ok {
		return repository.ErrNoDocument
	}
	fr.Status = status
	fr.DecidedAt = &decidedAt
	return nil
}

func (r *fakeFriendRepo) CancelPendingBetween(_ context.Context, a, b string, decidedAt time.Time) error {
	for _, fr := range r.requests {
		if fr.Status != models.FriendRequestPending {
			continue
		}
		if (fr.FromUserID == a && fr.ToUserID == b) || (fr.FromUserID == b && fr.ToUserID == a) {
			fr.Status = models.FriendRequestCancelled
			fr.DecidedAt = &decidedAt
		}
	}
	return nil
}

func (r *fakeFriendRepo) CreateFriendship(_ context.Context, a, b string) error {
	r.edges[pairKey(a, b)] = time.Now().UTC()
	return nil
}

func (r *fakeFriendRepo) DeleteFriendship(_ context.Context, a, b string) error {
	delete(r.edges, pairKey(a, b))
	return nil
}

func (r *fakeFriendRepo) AreFriends(_ context.Context, a, b string) (bool, error) {
	_, ok := r.edges[pairKey(a, b)]
	return ok, nil
}

func (r *fakeFriendRepo) ListFriendIDs(_ context.Context, userID string) ([]string, error) {
	var out []string
	for key := range r.edges {
		parts := strings.SplitN(key, "|", 2)
		if parts[0] == userID {
			out = append(out, parts[1])
		} else if parts[1] == userID {
			out = append(out, parts[0])
		}
	}
	return out, nil
}

type fakeBlockRepo struct {
	blocks map[string]bool
	mutes  map[string]bool
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{blocks: map[string]bool{}, mutes: map[string]bool{}}
}

func directedKey(a, b string) string { return a + ">" + b }

func (r *fakeBlockRepo) CreateBlock(_ context.Context, blockerID, blockedID string) error {
	r.blocks[directedKey(blockerID, blockedID)] = true
	return nil
}

func (r *fakeBlockRepo) DeleteBlock(_ context.Context, blockerID, blockedID string) (bool, error) {
	key := directedKey(blockerID, blockedID)
	if !r.blocks[key] {
		return false, nil
	}
	delete(r.blocks, key)
	return true, nil
}

func (r *fakeBlockRepo) IsBlocked(_ context.Context, blockerID, blockedID string) (bool, error) {
	return r.blocks[directedKey(blockerID, blockedID)], nil
}

func (r *fakeBlockRepo) ListBlocks(_ context.Context, blockerID string) ([]*models.UserBlock, error) {
	var out []*models.UserBlock
	for key := range r.blocks {
		parts := strings.SplitN(key, ">", 2)
		if parts[0] == blockerID {
			out = append(out, &models.UserBlock{BlockerID: parts[0], BlockedID: parts[1]})
		}
	}
	return out, nil
}

func (r *fakeBlockRepo) CreateMute(_ context.Context, muterID, mutedID string) error {
	r.mutes[directedKey(muterID, mutedID)] = true
	return nil
}

func (r *fakeBlockRepo) DeleteMute(_ context.Context, muterID, mutedID string) (bool, error) {
	key := directedKey(muterID, mutedID)
	if !r.mutes[key] {
		return false, nil
	}
	delete(r.mutes, key)
	return true, nil
}

func (r *fakeBlockRepo) IsMuted(_ context.Context, muterID, mutedID string) (bool, error) {
	return r.mutes[directedKey(muterID, mutedID)], nil
}

func (r *fakeBlockRepo) ListMutes(_ context.Context, muterID string) ([]*models.UserMute, error) {
	var out []*models.UserMute
	for key := range r.mutes {
		parts := strings.SplitN(key, ">", 2)
		if parts[0] == muterID {
			out = append(out, &models.UserMute{MuterID: parts[0], MutedID: parts[1]})
		}
	}
	return out, nil
}

type fakeDMRepo struct {
	threads  map[string]*models.DMThread
	byPair   map[string]string
	messages []*models.DMMessage
	reads    map[string]*models.MessageRead
}

func newFakeDMRepo() *fakeDMRepo {
	return &fakeDMRepo{
		threads: map[string]*models.DMThread{},
		byPair:  map[string]string{},
		reads:   map[string]*models.MessageRead{},
	}
}

func (r *fakeDMRepo) CreateThread(_ context.Context, t *models.DMThread) error {
	r.threads[t.ID] = t
	r.byPair[pairKey(t.User1ID, t.User2ID)] = t.ID
	return nil
}

func (r *fakeDMRepo) GetThread(_ context.Context, id string) (*models.DMThread, error) {
	t, ok := r.threads[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return t, nil
}

func (r *fakeDMRepo) GetThreadByPair(_ context.Context, a, b string) (*models.DMThread, error) {
	id, ok := r.byPair[pairKey(a, b)]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return r.threads[id], nil
}

func (r *fakeDMRepo) ListThreads(_ context.Context, userID string, skip, limit int64) ([]*models.DMThread, error) {
	var out []*models.DMThread
	for _, t := range r.threads {
		if t.HasParticipant(userID) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	if skip >= int64(len(out)) {
		return []*models.DMThread{}, nil
	}
	out = out[skip:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDMRepo) TouchThread(_ context.Context, id string, at time.Time) error {
	t, ok := r.threads[id]
	if !ok {
		return repository.ErrNoDocument
	}
	t.LastMessageAt = at
	return nil
}

func (r *fakeDMRepo) InsertMessage(_ context.Context, m *models.DMMessage) error {
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *fakeDMRepo) GetMessage(_ context.Context, id string) (*models.DMMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *fakeDMRepo) UpdateMessageText(_ context.Context, id, text string, editedAt time.Time) error {
	for _, m := range r.messages {
		if m.ID == id {
			m.Text = text
			m.EditedAt = &editedAt
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeDMRepo) SoftDeleteMessage(_ context.Context, id string, deletedAt time.Time) error {
	for _, m := range r.messages {
		if m.ID == id {
			m.DeletedAt = &deletedAt
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeDMRepo) ListMessages(_ context.Context, threadID string, before time.Time, limit int64) ([]*models.DMMessage, error) {
	var out []*models.DMMessage
	for _, m := range r.messages {
		if m.ThreadID != threadID || m.DeletedAt != nil {
			continue
		}
		if !before.IsZero() && !m.CreatedAt.Before(before) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDMRepo) LastMessage(_ context.Context, threadID string) (*models.DMMessage, error) {
	var last *models.DMMessage
	for _, m := range r.messages {
		if m.ThreadID != threadID || m.DeletedAt != nil {
			continue
		}
		if last == nil || m.CreatedAt.After(last.CreatedAt) {
			last = m
		}
	}
	if last == nil {
		return nil, repository.ErrNoDocument
	}
	cp := *last
	return &cp, nil
}

func (r *fakeDMRepo) CountUnread(_ context.Context, threadID, peerID string, after time.Time) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if m.ThreadID != threadID || m.SenderID != peerID || m.DeletedAt != nil {
			continue
		}
		if !after.IsZero() && !m.CreatedAt.After(after) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *fakeDMRepo) UpsertRead(_ context.Context, mr *models.MessageRead) error {
	cp := *mr
	r.reads[mr.ThreadID+"|"+mr.UserID] = &cp
	return nil
}

func (r *fakeDMRepo) GetRead(_ context.Context, threadID, userID string) (*models.MessageRead, error) {
	mr, ok := r.reads[threadID+"|"+userID]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return mr, nil
}

type fakeSocialRepo struct {
	posts    map[string]*models.Post
	reels    map[string]*models.Reel
	tribes   map[string]*models.Tribe
	comments []*models.Comment
}

func newFakeSocialRepo() *fakeSocialRepo {
	return &fakeSocialRepo{
		posts:  map[string]*models.Post{},
		reels:  map[string]*models.Reel{},
		tribes: map[string]*models.Tribe{},
	}
}

func (r *fakeSocialRepo) InsertPost(_ context.Context, p *models.Post) error {
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakeSocialRepo) GetPost(_ context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	cp := *p
	return &cp, nil
}

func (r *fakeSocialRepo) ListPosts(_ context.Context, limit int64) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range r.posts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSocialRepo) ListPostsByAuthors(_ context.Context, authorIDs []string, limit int64) ([]*models.Post, error) {
	set := map[string]bool{}
	for _, id := range authorIDs {
		set[id] = true
	}
	var out []*models.Post
	for _, p := range r.posts {
		if set[p.AuthorID] {
			cp := *p
			out = append(out, &cp)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSocialRepo) SetPostEngagement(_ context.Context, id string, likedBy, repostedBy []string, stats models.PostStats) error {
	p, ok := r.posts[id]
	if !ok {
		return repository.ErrNoDocument
	}
	if likedBy != nil {
		p.LikedBy = likedBy
	}
	if repostedBy != nil {
		p.RepostedBy = repostedBy
	}
	p.Stats = stats
	return nil
}

func (r *fakeSocialRepo) IncPostReplies(_ context.Context, id string) error {
	p, ok := r.posts[id]
	if !ok {
		return repository.ErrNoDocument
	}
	p.Stats.Replies++
	return nil
}

func (r *fakeSocialRepo) SearchPosts(_ context.Context, q string, limit int64) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range r.posts {
		if strings.Contains(strings.ToLower(p.Text), strings.ToLower(q)) {
			cp := *p
			out = append(out, &cp)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSocialRepo) InsertReel(_ context.Context, reel *models.Reel) error {
	cp := *reel
	r.reels[reel.ID] = &cp
	return nil
}

func (r *fakeSocialRepo) GetReel(_ context.Context, id string) (*models.Reel, error) {
	reel, ok := r.reels[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	cp := *reel
	return &cp, nil
}

func (r *fakeSocialRepo) ListReels(_ context.Context, limit int64) ([]*models.Reel, error) {
	var out []*models.Reel
	for _, reel := range r.reels {
		cp := *reel
		out = append(out, &cp)
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSocialRepo) SetReelEngagement(_ context.Context, id string, likedBy []string, stats models.ReelStats) error {
	reel, ok := r.reels[id]
	if !ok {
		return repository.ErrNoDocument
	}
	reel.LikedBy = likedBy
	reel.Stats = stats
	return nil
}

func (r *fakeSocialRepo) IncReelViews(_ context.Context, id string) error {
	reel, ok := r.reels[id]
	if !ok {
		return repository.ErrNoDocument
	}
	reel.Stats.Views++
	return nil
}

func (r *fakeSocialRepo) IncReelComments(_ context.Context, id string) error {
	reel, ok := r.reels[id]
	if !ok {
		return repository.ErrNoDocument
	}
	reel.Stats.Comments++
	return nil
}

func (r *fakeSocialRepo) InsertTribe(_ context.Context, t *models.Tribe) error {
	cp := *t
	r.tribes[t.ID] = &cp
	return nil
}

func (r *fakeSocialRepo) GetTribe(_ context.Context, id string) (*models.Tribe, error) {
	t, ok := r.tribes[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	cp := *t
	return &cp, nil
}

func (r *fakeSocialRepo) ListTribes(_ context.Context, limit int64) ([]*models.Tribe, error) {
	var out []*models.Tribe
	for _, t := range r.tribes {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberCount > out[j].MemberCount })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSocialRepo) SetTribeMembers(_ context.Context, id string, members []string) error {
	t, ok := r.tribes[id]
	if !ok {
		return repository.ErrNoDocument
	}
	t.Members = members
	t.MemberCount = len(members)
	return nil
}

func (r *fakeSocialRepo) SearchTribes(_ context.Context, q string, limit int64) ([]*models.Tribe, error) {
	var out []*models.Tribe
	for _, t := range r.tribes {
		if strings.Contains(strings.ToLower(t.Name), strings.ToLower(q)) {
			cp := *t
			out = append(out, &cp)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSocialRepo) InsertComment(_ context.Context, c *models.Comment) error {
	cp := *c
	r.comments = append(r.comments, &cp)
	return nil
}

func (r *fakeSocialRepo) ListComments(_ context.Context, field, id string, limit int64) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range r.comments {
		switch field {
		case "postId":
			if c.PostID != id {
				continue
			}
		case "reelId":
			if c.ReelID != id {
				continue
			}
		default:
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeNotifRepo struct {
	mu    sync.Mutex
	items []*models.Notification
}

func (r *fakeNotifRepo) Insert(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	return nil
}

func (r *fakeNotifRepo) ListForUser(_ context.Context, userID string, limit int64) ([]*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.items {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (r *fakeNotifRepo) forUser(userID string) []*models.Notification {
	out, _ := r.ListForUser(context.Background(), userID, 1000)
	return out
}

type fakeWalletRepo struct {
	txs []*models.WalletTransaction
}

func (r *fakeWalletRepo) InsertTransaction(_ context.Context, tx *models.WalletTransaction) error {
	r.txs = append(r.txs, tx)
	return nil
}

func (r *fakeWalletRepo) ListTransactions(_ context.Context, userID string, limit int64) ([]*models.WalletTransaction, error) {
	var out []*models.WalletTransaction
	for _, tx := range r.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeSender records realtime deliveries per user.
type fakeSender struct {
	mu   sync.Mutex
	sent map[string][][]byte
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: map[string][][]byte{}}
}

func (s *fakeSender) SendToUser(userID string, msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[userID] = append(s.sent[userID], msg)
}

func (s *fakeSender) countFor(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent[userID])
}
