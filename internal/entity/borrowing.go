package entity

import "time"

// Borrowing tracks one lending of one book copy to one member. It is created
// ACTIVE (returned=false) and transitions exactly once to CLOSED via the
// ledger's return operation; it is never deleted by normal operation.
//
// MemberID and BookID are weak references: deleting the member or the book
// nulls them out instead of cascading into the borrowing history.
type Borrowing struct {
	ID         string     `json:"id"`
	MemberID   *string    `json:"member_id"`
	BookID     *string    `json:"book_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
	Returned   bool       `json:"returned"`
}

// Overdue reports whether the borrowing is still active and past its due date.
func (b Borrowing) Overdue(today time.Time) bool {
	if b.Returned {
		return false
	}
	y1, m1, d1 := b.DueDate.Date()
	due := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	y2, m2, d2 := today.Date()
	now := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return due.Before(now)
}
