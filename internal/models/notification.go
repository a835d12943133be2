package models

import "time"

type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Payload   map[string]any `bson:"payload" json:"payload"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// Notification types written by the services.
const (
	NotifFriendRequest  = "friend_request"
	NotifFriendAccepted = "friend_accepted"
	NotifDM             = "dm"
	NotifPostLike       = "post_like"
	NotifTribeJoin      = "tribe_join"
	NotifOrderPlaced    = "order_placed"
	NotifTicketBought   = "ticket_bought"
)
