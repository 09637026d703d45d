package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tTrmc/library-service/library/internal/errs"
	"github.com/tTrmc/library-service/library/internal/model"
)

// CalculateLateFee resolves the active loan for (patron, book), falling back
// to the most recent closed one. Fees on closed loans are frozen at the
// recorded return date.
func (s *Service) CalculateLateFee(ctx context.Context, patronID string, bookID int) model.LateFeeInfo {
	ok, normalized, msg := validatePatronID(patronID)
	if !ok {
		return model.LateFeeInfo{Status: msg}
	}
	if bookID <= 0 {
		return model.LateFeeInfo{Status: "Invalid book ID."}
	}

	if _, err := s.repo.GetBookByID(ctx, bookID); err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("GetBookByID", zap.Error(err))
		}
		return model.LateFeeInfo{Status: "Book not found."}
	}

	record, err := s.repo.GetActiveBorrowRecord(ctx, normalized, bookID)
	active := err == nil
	if !active {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("GetActiveBorrowRecord", zap.Error(err))
			return model.LateFeeInfo{Status: "Book is not borrowed by this patron."}
		}
		record, err = s.repo.GetLatestBorrowRecord(ctx, normalized, bookID)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				s.log.Error("GetLatestBorrowRecord", zap.Error(err))
			}
			return model.LateFeeInfo{Status: "Book is not borrowed by this patron."}
		}
	}

	reference := s.now()
	if !active && record.Returned() {
		reference = *record.ReturnDate
	}
	daysOverdue, feeAmount := overdueMetrics(record.DueDate, reference)

	var status string
	switch {
	case active && daysOverdue == 0:
		status = "No outstanding late fees."
	case active:
		status = fmt.Sprintf("Book overdue by %d day(s).", daysOverdue)
	case record.Returned() && daysOverdue == 0:
		status = fmt.Sprintf("Book returned on %s. No outstanding late fees.", formatDate(*record.ReturnDate))
	case record.Returned():
		status = fmt.Sprintf("Book was returned on %s with %d day(s) overdue.", formatDate(*record.ReturnDate), daysOverdue)
	default:
		status = "Book is not borrowed by this patron."
	}

	return model.LateFeeInfo{
		FeeAmount:   feeAmount,
		DaysOverdue: daysOverdue,
		Status:      status,
		DueDate:     formatDate(record.DueDate),
		ReturnDate:  formatDatePtr(record.ReturnDate),
	}
}

// SearchBooks matches title/author by case-insensitive substring and ISBN
// exactly once hyphens are stripped. Unknown types and blank terms yield an
// empty list.
func (s *Service) SearchBooks(ctx context.Context, term, searchType string) []model.Book {
	by := model.SearchType(strings.ToLower(strings.TrimSpace(searchType)))
	switch by {
	case model.SearchByTitle, model.SearchByAuthor, model.SearchByISBN:
	default:
		return []model.Book{}
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return []model.Book{}
	}
	if by == model.SearchByISBN {
		term = strings.ReplaceAll(term, "-", "")
	}

	books, err := s.repo.SearchBooks(ctx, term, by)
	if err != nil {
		s.log.Error("SearchBooks", zap.Error(err))
		return []model.Book{}
	}
	if books == nil {
		books = []model.Book{}
	}
	return books
}

// PatronStatusReport aggregates open loans (fees computed as of now) and the
// full borrow history, newest first.
func (s *Service) PatronStatusReport(ctx context.Context, patronID string) model.StatusReport {
	ok, normalized, msg := validatePatronID(patronID)
	report := model.StatusReport{
		PatronID:      normalized,
		BorrowedBooks: []model.BorrowedBook{},
		History:       []model.HistoryEntry{},
	}
	if !ok {
		report.Status = msg
		return report
	}

	var (
		openLoans []model.BorrowRecord
		history   []model.BorrowRecord
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		openLoans, err = s.repo.GetPatronBorrowedBooks(gctx, normalized)
		return err
	})
	gg.Go(func() error {
		var err error
		history, err = s.repo.GetPatronBorrowHistory(gctx, normalized)
		return err
	})
	if err := gg.Wait(); err != nil {
		s.log.Error("PatronStatusReport", zap.Error(err))
		report.Status = "Database error occurred while building the report."
		return report
	}

	now := s.now()
	var totalLateFees float64
	for _, loan := range openLoans {
		daysOverdue, feeAmount := overdueMetrics(loan.DueDate, now)
		report.BorrowedBooks = append(report.BorrowedBooks, model.BorrowedBook{
			BookID:      loan.BookID,
			Title:       loan.Title,
			Author:      loan.Author,
			BorrowDate:  formatDate(loan.BorrowDate),
			DueDate:     formatDate(loan.DueDate),
			DaysOverdue: daysOverdue,
			LateFee:     feeAmount,
		})
		totalLateFees += feeAmount
	}

	for _, rec := range history {
		report.History = append(report.History, model.HistoryEntry{
			BookID:     rec.BookID,
			Title:      rec.Title,
			Author:     rec.Author,
			BorrowDate: formatDate(rec.BorrowDate),
			DueDate:    formatDate(rec.DueDate),
			ReturnDate: formatDatePtr(rec.ReturnDate),
		})
	}

	report.Status = "success"
	report.TotalBorrowed = len(report.BorrowedBooks)
	report.TotalLateFees = round2(totalLateFees)
	return report
}
