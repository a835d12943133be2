package models

import "time"

type User struct {
	ID            string    `bson:"id" json:"id"`
	Handle        string    `bson:"handle" json:"handle"`
	Name          string    `bson:"name" json:"name"`
	Avatar        string    `bson:"avatar" json:"avatar"`
	Bio           string    `bson:"bio" json:"bio"`
	KYCTier       int       `bson:"kycTier" json:"kycTier"`
	Language      string    `bson:"language" json:"language"`
	Interests     []string  `bson:"interests" json:"interests"`
	ConsentGiven  bool      `bson:"consentGiven" json:"consentGiven"`
	WalletBalance float64   `bson:"walletBalance" json:"walletBalance"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// Credential is the login side-store, keyed by handle and kept out of the user
// document so profile reads never leak the hash.
type Credential struct {
	Handle       string    `bson:"handle" json:"-"`
	UserID       string    `bson:"userId" json:"-"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"-"`
}

// Profile is a user document plus live presence for peers viewing it.
type Profile struct {
	*User
	Presence map[string]any `json:"presence,omitempty"`
}

type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

type Onboarding struct {
	Language     string   `json:"language"`
	Interests    []string `json:"interests"`
	ConsentGiven bool     `json:"consentGiven"`
}
