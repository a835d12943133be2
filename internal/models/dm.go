package models

import "time"

// DMThread participants are stored in canonical order; at most one thread per
// unordered pair.
type DMThread struct {
	ID            string    `bson:"id" json:"id"`
	User1ID       string    `bson:"user1Id" json:"user1Id"`
	User2ID       string    `bson:"user2Id" json:"user2Id"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	LastMessageAt time.Time `bson:"lastMessageAt" json:"lastMessageAt"`
}

// HasParticipant reports whether userID is one of the two thread members.
func (t *DMThread) HasParticipant(userID string) bool {
	return t.User1ID == userID || t.User2ID == userID
}

// Peer returns the other participant.
func (t *DMThread) Peer(userID string) string {
	if t.User1ID == userID {
		return t.User2ID
	}
	return t.User1ID
}

type DMMessage struct {
	ID        string     `bson:"id" json:"id"`
	ThreadID  string     `bson:"threadId" json:"threadId"`
	SenderID  string     `bson:"senderId" json:"senderId"`
	Text      string     `bson:"text,omitempty" json:"text,omitempty"`
	MediaURL  string     `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	MimeType  string     `bson:"mimeType,omitempty" json:"mimeType,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	EditedAt  *time.Time `bson:"editedAt,omitempty" json:"editedAt,omitempty"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// MessageRead is the per-(thread,user) read cursor, upserted on every mark-read.
type MessageRead struct {
	ThreadID          string    `bson:"threadId" json:"threadId"`
	UserID            string    `bson:"userId" json:"userId"`
	LastReadMessageID string    `bson:"lastReadMessageId" json:"lastReadMessageId"`
	ReadAt            time.Time `bson:"readAt" json:"readAt"`
}

// ThreadView is what the thread list returns per thread: the peer profile, the
// most recent non-deleted message and the caller's unread count.
type ThreadView struct {
	Thread      *DMThread  `json:"thread"`
	Peer        *User      `json:"peer,omitempty"`
	LastMessage *DMMessage `json:"lastMessage,omitempty"`
	UnreadCount int64      `json:"unreadCount"`
}
