package models

import "time"

type FriendRequestStatus string

const (
	FriendRequestPending   FriendRequestStatus = "pending"
	FriendRequestAccepted  FriendRequestStatus = "accepted"
	FriendRequestDeclined  FriendRequestStatus = "declined"
	FriendRequestCancelled FriendRequestStatus = "cancelled"
)

type FriendRequest struct {
	ID         string              `bson:"id" json:"id"`
	FromUserID string              `bson:"fromUserId" json:"fromUserId"`
	ToUserID   string              `bson:"toUserId" json:"toUserId"`
	Status     FriendRequestStatus `bson:"status" json:"status"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	DecidedAt  *time.Time          `bson:"decidedAt,omitempty" json:"decidedAt,omitempty"`
}

// Friendship stores one edge per pair with UserID1 < UserID2. Every reader and
// writer must go through CanonicalPair first.
type Friendship struct {
	UserID1   string    `bson:"userId1" json:"userId1"`
	UserID2   string    `bson:"userId2" json:"userId2"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type UserBlock struct {
	BlockerID string    `bson:"blockerId" json:"blockerId"`
	BlockedID string    `bson:"blockedId" json:"blockedId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type UserMute struct {
	MuterID   string    `bson:"muterId" json:"muterId"`
	MutedID   string    `bson:"mutedId" json:"mutedId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CanonicalPair orders two user ids lexicographically so a symmetric
// relationship is stored under exactly one key.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
