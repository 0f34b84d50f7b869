package entity

import "time"

// Fine is the overdue penalty for a borrowing, at most one per borrowing.
// FineAmount is in whole currency units and is recomputed by the fine
// calculator while the borrowing is still active.
type Fine struct {
	ID          string    `json:"id"`
	BorrowingID string    `json:"borrowing_id"`
	FineAmount  int64     `json:"fine_amount"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}
