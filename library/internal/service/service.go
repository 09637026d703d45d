package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tTrmc/library-service/library/internal/errs"
	"github.com/tTrmc/library-service/library/internal/payment"
	"github.com/tTrmc/library-service/library/internal/repository"
	"github.com/tTrmc/library-service/pkg/circuit_breaker"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	gateway  payment.Gateway
	cb       circuit_breaker.CircuitBreaker
	producer sarama.SyncProducer
	now      func() time.Time
}

// NewService wires the circulation core. producer may be nil when event
// publishing is not configured.
func NewService(repo repository.Repository, gateway payment.Gateway, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		gateway:  gateway,
		cb:       circuit_breaker.NewCircuitBreaker(20, 30*time.Second, 0.5, 3),
		producer: producer,
		now:      time.Now,
	}
}

// AddBook validates catalog input and persists a new book with all copies
// available. The first failing check wins.
func (s *Service) AddBook(ctx context.Context, title, author, isbn string, totalCopies int) (bool, string) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return false, "Title is required."
	}
	if utf8.RuneCountInString(title) > 200 {
		return false, "Title must be less than 200 characters."
	}
	if author == "" {
		return false, "Author is required."
	}
	if utf8.RuneCountInString(author) > 100 {
		return false, "Author must be less than 100 characters."
	}
	if len(isbn) != 13 {
		return false, "ISBN must be exactly 13 digits."
	}
	if totalCopies <= 0 {
		return false, "Total copies must be a positive integer."
	}

	if _, err := s.repo.GetBookByISBN(ctx, isbn); err == nil {
		return false, "A book with this ISBN already exists."
	} else if !errors.Is(err, errs.ErrNotFound) {
		s.log.Error("GetBookByISBN", zap.Error(err))
		return false, "Database error occurred while adding the book."
	}

	if err := s.repo.InsertBook(ctx, title, author, isbn, totalCopies, totalCopies); err != nil {
		if errors.Is(err, errs.ErrDuplicateISBN) {
			return false, "A book with this ISBN already exists."
		}
		s.log.Error("InsertBook", zap.Error(err))
		return false, "Database error occurred while adding the book."
	}

	return true, fmt.Sprintf("Book %q has been successfully added to the catalog.", title)
}

// BorrowBook runs the borrow workflow; every check is a hard stop.
func (s *Service) BorrowBook(ctx context.Context, patronID string, bookID int) (bool, string) {
	ok, normalized, msg := validatePatronID(patronID)
	if !ok {
		return false, msg
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, "Book not found."
		}
		s.log.Error("GetBookByID", zap.Error(err))
		return false, "Database error occurred while creating borrow record."
	}

	if book.AvailableCopies <= 0 {
		return false, "This book is currently not available."
	}

	count, err := s.repo.GetPatronBorrowCount(ctx, normalized)
	if err != nil {
		s.log.Error("GetPatronBorrowCount", zap.Error(err))
		return false, "Database error occurred while creating borrow record."
	}
	if count > borrowLimit {
		return false, "You have reached the maximum borrowing limit of 5 books."
	}

	borrowDate := s.now()
	dueDate := borrowDate.AddDate(0, 0, loanPeriodDays)

	if err := s.repo.InsertBorrowRecord(ctx, normalized, bookID, borrowDate, dueDate); err != nil {
		s.log.Error("InsertBorrowRecord", zap.Error(err))
		return false, "Database error occurred while creating borrow record."
	}
	if err := s.repo.UpdateBookAvailability(ctx, bookID, -1); err != nil {
		s.log.Error("UpdateBookAvailability", zap.Error(err))
		return false, "Database error occurred while updating book availability."
	}

	s.publishEvent(ctx, eventBorrow(normalized, bookID, borrowDate))

	return true, fmt.Sprintf("Successfully borrowed %q. Due date: %s.", book.Title, formatDate(dueDate))
}

// ReturnBook closes the active loan, freezes the fee at the return
// timestamp and releases the copy back to the catalog.
func (s *Service) ReturnBook(ctx context.Context, patronID string, bookID int) (bool, string) {
	ok, normalized, msg := validatePatronID(patronID)
	if !ok {
		return false, msg
	}
	if bookID <= 0 {
		return false, "Invalid book ID."
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, "Book not found."
		}
		s.log.Error("GetBookByID", zap.Error(err))
		return false, "Database error occurred while updating borrow record."
	}

	active, err := s.repo.GetActiveBorrowRecord(ctx, normalized, bookID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("GetActiveBorrowRecord", zap.Error(err))
			return false, "Database error occurred while updating borrow record."
		}
		latest, err := s.repo.GetLatestBorrowRecord(ctx, normalized, bookID)
		if err == nil && latest.Returned() {
			return false, "This book has already been returned."
		}
		return false, "This book is not borrowed by this patron."
	}

	if book.AvailableCopies >= book.TotalCopies {
		return false, "Book inventory data is inconsistent; all copies are already available."
	}

	returnDate := s.now()
	_, feeAmount := overdueMetrics(active.DueDate, returnDate)

	if err := s.repo.UpdateBorrowRecordReturnDate(ctx, normalized, bookID, returnDate); err != nil {
		s.log.Error("UpdateBorrowRecordReturnDate", zap.Error(err))
		return false, "Database error occurred while updating borrow record."
	}
	if err := s.repo.UpdateBookAvailability(ctx, bookID, 1); err != nil {
		s.log.Error("UpdateBookAvailability", zap.Error(err))
		return false, "Database error occurred while updating book availability."
	}

	s.publishEvent(ctx, eventReturn(normalized, bookID, feeAmount, returnDate))

	if feeAmount > 0 {
		return true, fmt.Sprintf("Book %q successfully returned. Late fee due: $%.2f.", book.Title, feeAmount)
	}
	return true, fmt.Sprintf("Book %q successfully returned. No late fees.", book.Title)
}
