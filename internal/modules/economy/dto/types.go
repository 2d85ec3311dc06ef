package dto

import "time"

type GoodOutput struct {
	Name  string
	Price int
	Icon  string
}

type PurchaseInput struct {
	UserID   string
	ItemName string
}

type PurchaseOutput struct {
	EventID    int64
	ItemName   string
	Cost       int
	At         time.Time
	NewBalance int
}
