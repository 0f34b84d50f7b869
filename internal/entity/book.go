package entity

import "time"

type Book struct {
	ID             string     `json:"id"`
	ISBN           string     `json:"isbn"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Description    string     `json:"description,omitempty"`
	Publisher      string     `json:"publisher,omitempty"`
	PublishedDate  *time.Time `json:"published_date,omitempty"`
	Genres         []Genre    `json:"genres"`
	TotalCopies    int        `json:"total_copies"`
	BorrowedCopies int        `json:"borrowed_copies"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AvailableCopies is total minus borrowed. Copy counts are only mutated by the
// borrowing ledger, which keeps 0 <= borrowed_copies <= total_copies.
func (b Book) AvailableCopies() int {
	return b.TotalCopies - b.BorrowedCopies
}
