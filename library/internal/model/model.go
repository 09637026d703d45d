package model

import "time"

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	TotalCopies     int    `json:"total_copies" db:"total_copies"`
	AvailableCopies int    `json:"available_copies" db:"available_copies"`
}

// BorrowRecord is a circulation row joined with its book.
// ReturnDate is nil while the loan is open.
type BorrowRecord struct {
	ID         int        `json:"id" db:"id"`
	PatronID   string     `json:"patron_id" db:"patron_id"`
	BookID     int        `json:"book_id" db:"book_id"`
	BorrowDate time.Time  `json:"borrow_date" db:"borrow_date"`
	DueDate    time.Time  `json:"due_date" db:"due_date"`
	ReturnDate *time.Time `json:"return_date" db:"return_date"`
	Title      string     `json:"title" db:"title"`
	Author     string     `json:"author" db:"author"`
}

// Returned reports whether the loan has been closed.
func (r BorrowRecord) Returned() bool {
	return r.ReturnDate != nil
}

type LateFeeInfo struct {
	FeeAmount   float64 `json:"fee_amount"`
	DaysOverdue int     `json:"days_overdue"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date,omitempty"`
	ReturnDate  *string `json:"return_date,omitempty"`
}

type BorrowedBook struct {
	BookID      int     `json:"book_id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	BorrowDate  string  `json:"borrow_date"`
	DueDate     string  `json:"due_date"`
	DaysOverdue int     `json:"days_overdue"`
	LateFee     float64 `json:"late_fee"`
}

type HistoryEntry struct {
	BookID     int     `json:"book_id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	BorrowDate string  `json:"borrow_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
}

type StatusReport struct {
	PatronID      string         `json:"patron_id"`
	Status        string         `json:"status"`
	BorrowedBooks []BorrowedBook `json:"borrowed_books"`
	TotalBorrowed int            `json:"total_borrowed"`
	TotalLateFees float64        `json:"total_late_fees"`
	History       []HistoryEntry `json:"history"`
}

type PaymentOutcome struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type SearchType string

const (
	SearchByTitle  SearchType = "title"
	SearchByAuthor SearchType = "author"
	SearchByISBN   SearchType = "isbn"
)

type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"total_copies"`
}

type CirculationRequest struct {
	PatronID string `json:"patron_id" validate:"required"`
}

type PayLateFeesRequest struct {
	PatronID string `json:"patron_id" validate:"required"`
	BookID   string `json:"book_id" validate:"required"`
}

type RefundRequest struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
