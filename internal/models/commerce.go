package models

import "time"

type MenuItem struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

type Venue struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	Avatar      string     `bson:"avatar" json:"avatar"`
	Location    string     `bson:"location" json:"location"`
	Rating      float64    `bson:"rating" json:"rating"`
	MenuItems   []MenuItem `bson:"menuItems" json:"menuItems"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

type OrderItem struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

type OrderSplit struct {
	UserID string  `bson:"userId" json:"userId"`
	Amount float64 `bson:"amount" json:"amount"`
}

type Order struct {
	ID        string       `bson:"id" json:"id"`
	UserID    string       `bson:"userId" json:"userId"`
	VenueID   string       `bson:"venueId" json:"venueId"`
	Items     []OrderItem  `bson:"items" json:"items"`
	Total     float64      `bson:"total" json:"total"`
	Split     []OrderSplit `bson:"split" json:"split"`
	Status    string       `bson:"status" json:"status"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
}

type EventTier struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

type Event struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	Image       string      `bson:"image" json:"image"`
	Date        string      `bson:"date" json:"date"`
	Location    string      `bson:"location" json:"location"`
	Tiers       []EventTier `bson:"tiers" json:"tiers"`
	VibeMeter   int         `bson:"vibeMeter" json:"vibeMeter"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}

type Ticket struct {
	ID          string    `bson:"id" json:"id"`
	EventID     string    `bson:"eventId" json:"eventId"`
	PurchaserID string    `bson:"purchaserId" json:"purchaserId"`
	Tier        string    `bson:"tier" json:"tier"`
	Price       float64   `bson:"price" json:"price"`
	QRToken     string    `bson:"qrToken" json:"qrToken"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	Event       *Event    `bson:"-" json:"event,omitempty"`
}

type CreatorItem struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Type  string  `bson:"type" json:"type"`
	Price float64 `bson:"price" json:"price"`
}

type Creator struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	DisplayName string        `bson:"displayName" json:"displayName"`
	Avatar      string        `bson:"avatar" json:"avatar"`
	Bio         string        `bson:"bio" json:"bio"`
	Items       []CreatorItem `bson:"items" json:"items"`
	Followers   int           `bson:"followers" json:"followers"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
