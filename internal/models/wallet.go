package models

import "time"

type WalletTransaction struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Type        string    `bson:"type" json:"type"`
	Amount      float64   `bson:"amount" json:"amount"`
	Status      string    `bson:"status" json:"status"`
	Description string    `bson:"description" json:"description"`
	Source      string    `bson:"source,omitempty" json:"source,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

const (
	TxTopup    = "topup"
	TxWithdraw = "withdraw"
	TxPayment  = "payment"
	TxRefund   = "refund"
	TxReward   = "reward"
)

type WalletSummary struct {
	Balance      float64              `json:"balance"`
	KYCTier      int                  `json:"kycTier"`
	Transactions []*WalletTransaction `json:"transactions"`
}
