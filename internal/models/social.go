package models

import "time"

type PostStats struct {
	Likes   int `bson:"likes" json:"likes"`
	Quotes  int `bson:"quotes" json:"quotes"`
	Reposts int `bson:"reposts" json:"reposts"`
	Replies int `bson:"replies" json:"replies"`
}

type Post struct {
	ID         string    `bson:"id" json:"id"`
	AuthorID   string    `bson:"authorId" json:"authorId"`
	Text       string    `bson:"text" json:"text"`
	Media      string    `bson:"media,omitempty" json:"media,omitempty"`
	Audience   string    `bson:"audience" json:"audience"`
	Stats      PostStats `bson:"stats" json:"stats"`
	LikedBy    []string  `bson:"likedBy" json:"likedBy"`
	RepostedBy []string  `bson:"repostedBy" json:"repostedBy"`
	Flagged    bool      `bson:"flagged" json:"flagged"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	Author     *User     `bson:"-" json:"author,omitempty"`
}

type ReelStats struct {
	Views    int `bson:"views" json:"views"`
	Likes    int `bson:"likes" json:"likes"`
	Comments int `bson:"comments" json:"comments"`
}

type Reel struct {
	ID        string    `bson:"id" json:"id"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	VideoURL  string    `bson:"videoUrl" json:"videoUrl"`
	Thumb     string    `bson:"thumb" json:"thumb"`
	Caption   string    `bson:"caption" json:"caption"`
	Stats     ReelStats `bson:"stats" json:"stats"`
	LikedBy   []string  `bson:"likedBy" json:"likedBy"`
	IsLive    bool      `bson:"isLive" json:"isLive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Author    *User     `bson:"-" json:"author,omitempty"`
}

type Tribe struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Tags        []string  `bson:"tags" json:"tags"`
	Type        string    `bson:"type" json:"type"`
	Description string    `bson:"description" json:"description"`
	Avatar      string    `bson:"avatar" json:"avatar"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	Members     []string  `bson:"members" json:"members"`
	MemberCount int       `bson:"memberCount" json:"memberCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type Comment struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"postId,omitempty" json:"postId,omitempty"`
	ReelID    string    `bson:"reelId,omitempty" json:"reelId,omitempty"`
	AuthorID  string    `bson:"authorId" json:"authorId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Author    *User     `bson:"-" json:"author,omitempty"`
}
