package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/tTrmc/library-service/library/internal/errs"
	"github.com/tTrmc/library-service/library/internal/model"
)

func TestService_CalculateLateFee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	book := model.Book{ID: 1, Title: "1984"}

	t.Run("invalid patron id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		info := svc.CalculateLateFee(ctx, "12a456", 1)
		require.Equal(t, "Invalid patron ID. Must be exactly 6 digits.", info.Status)
		require.Zero(t, info.FeeAmount)
	})

	t.Run("invalid book id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		info := svc.CalculateLateFee(ctx, "123456", -3)
		require.Equal(t, "Invalid book ID.", info.Status)
	})

	t.Run("book not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetBookByID(ctx, 1).Return(model.Book{}, errs.ErrNotFound)

		info := svc.CalculateLateFee(ctx, "123456", 1)
		require.Equal(t, "Book not found.", info.Status)
	})

	t.Run("no borrow record at all", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetBookByID(ctx, 1).Return(book, nil)
		repo.EXPECT().GetActiveBorrowRecord(ctx, "123456", 1).Return(model.BorrowRecord{}, errs.ErrNotFound)
		repo.EXPECT().GetLatestBorrowRecord(ctx, "123456", 1).Return(model.BorrowRecord{}, errs.ErrNotFound)

		info := svc.CalculateLateFee(ctx, "123456", 1)
		require.Equal(t, "Book is not borrowed by this patron.", info.Status)
	})

	t.Run("active loan on time", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		due := testNow.AddDate(0, 0, 5)
		repo.EXPECT().GetBookByID(ctx, 1).Return(book, nil)
		repo.EXPECT().GetActiveBorrowRecord(ctx, "123456", 1).
			Return(model.BorrowRecord{DueDate: due}, nil)

		info := svc.CalculateLateFee(ctx, "123456", 1)
		require.Equal(t, "No outstanding late fees.", info.Status)
		require.Zero(t, info.DaysOverdue)
		require.Zero(t, info.FeeAmount)
		require.Equal(t, formatDate(due), info.DueDate)
		require.Nil(t, info.ReturnDate)
	})

	t.Run("active loan overdue", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetBookByID(ctx, 1).Return(book, nil)
		repo.EXPECT().GetActiveBorrowRecord(ctx, "123456", 1).
			Return(model.BorrowRecord{DueDate: testNow.AddDate(0, 0, -10)}, nil)

		info := svc.CalculateLateFee(ctx, "123456", 1)
		require.Equal(t, "Book overdue by 10 day(s).", info.Status)
		require.Equal(t, 10, info.DaysOverdue)
		require.Equal(t, 6.50, info.FeeAmount)
	})

	t.Run("closed loan fee frozen at return date", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		due := testNow.AddDate(0, 0, -30)
		returned := due.AddDate(0, 0, 3)
		repo.EXPECT().GetBookByID(ctx, 1).Return(book, nil)
		repo.EXPECT().GetActiveBorrowRecord(ctx, "123456", 1).Return(model.BorrowRecord{}, errs.ErrNotFound)
		repo.EXPECT().GetLatestBorrowRecord(ctx, "123456", 1).
			Return(model.BorrowRecord{DueDate: due, ReturnDate: &returned}, nil)

		info := svc.CalculateLateFee(ctx, "123456", 1)
		require.Equal(t, "Book was returned on "+formatDate(returned)+" with 3 day(s) overdue.", info.Status)
		require.Equal(t, 3, info.DaysOverdue)
		require.Equal(t, 1.50, info.FeeAmount)
		require.NotNil(t, info.ReturnDate)
		require.Equal(t, formatDate(returned), *info.ReturnDate)
	})

	t.Run("closed loan returned on time", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		due := testNow.AddDate(0, 0, -30)
		returned := due.AddDate(0, 0, -2)
		repo.EXPECT().GetBookByID(ctx, 1).Return(book, nil)
		repo.EXPECT().GetActiveBorrowRecord(ctx, "123456", 1).Return(model.BorrowRecord{}, errs.ErrNotFound)
		repo.EXPECT().GetLatestBorrowRecord(ctx, "123456", 1).
			Return(model.BorrowRecord{DueDate: due, ReturnDate: &returned}, nil)

		info := svc.CalculateLateFee(ctx, "123456", 1)
		require.Equal(t, "Book returned on "+formatDate(returned)+". No outstanding late fees.", info.Status)
		require.Zero(t, info.FeeAmount)
	})
}

func TestService_SearchBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	found := []model.Book{{ID: 1, Title: "1984", Author: "George Orwell", ISBN: "9780451524935"}}

	t.Run("title substring", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().SearchBooks(ctx, "198", model.SearchByTitle).Return(found, nil)

		require.Equal(t, found, svc.SearchBooks(ctx, " 198 ", "title"))
	})

	t.Run("isbn hyphens stripped", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().SearchBooks(ctx, "9780451524935", model.SearchByISBN).Return(found, nil)

		require.Equal(t, found, svc.SearchBooks(ctx, "978-0-451-52493-5", "ISBN"))
	})

	t.Run("unknown search type", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		require.Empty(t, svc.SearchBooks(ctx, "1984", "publisher"))
	})

	t.Run("blank term", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		require.Empty(t, svc.SearchBooks(ctx, "   ", "title"))
	})

	t.Run("repository failure yields empty list", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().SearchBooks(ctx, "orwell", model.SearchByAuthor).Return(nil, errors.New("db down"))

		books := svc.SearchBooks(ctx, "orwell", "author")
		require.NotNil(t, books)
		require.Empty(t, books)
	})

	t.Run("nil result normalized", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().SearchBooks(ctx, "nothing", model.SearchByTitle).Return(nil, nil)

		books := svc.SearchBooks(ctx, "nothing", "title")
		require.NotNil(t, books)
		require.Empty(t, books)
	})
}

func TestService_PatronStatusReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("invalid patron id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		report := svc.PatronStatusReport(ctx, "12")
		require.Equal(t, "Invalid patron ID. Must be exactly 6 digits.", report.Status)
		require.Empty(t, report.BorrowedBooks)
		require.Empty(t, report.History)
	})

	t.Run("aggregates loans and history", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		returned := testNow.AddDate(0, 0, -20)
		open := []model.BorrowRecord{
			{BookID: 1, Title: "1984", Author: "George Orwell", BorrowDate: testNow.AddDate(0, 0, -24), DueDate: testNow.AddDate(0, 0, -10)},
			{BookID: 2, Title: "Dune", Author: "Frank Herbert", BorrowDate: testNow.AddDate(0, 0, -7), DueDate: testNow.AddDate(0, 0, 7)},
		}
		history := append(open, model.BorrowRecord{
			BookID: 3, Title: "Emma", Author: "Jane Austen",
			BorrowDate: testNow.AddDate(0, 0, -40), DueDate: testNow.AddDate(0, 0, -26), ReturnDate: &returned,
		})
		repo.EXPECT().GetPatronBorrowedBooks(gomock.Any(), "123456").Return(open, nil)
		repo.EXPECT().GetPatronBorrowHistory(gomock.Any(), "123456").Return(history, nil)

		report := svc.PatronStatusReport(ctx, "123456")
		require.Equal(t, "success", report.Status)
		require.Equal(t, "123456", report.PatronID)
		require.Equal(t, 2, report.TotalBorrowed)
		require.Len(t, report.History, 3)

		require.Equal(t, 10, report.BorrowedBooks[0].DaysOverdue)
		require.Equal(t, 6.50, report.BorrowedBooks[0].LateFee)
		require.Zero(t, report.BorrowedBooks[1].DaysOverdue)
		require.Equal(t, 6.50, report.TotalLateFees)

		require.Nil(t, report.History[0].ReturnDate)
		require.NotNil(t, report.History[2].ReturnDate)
		require.Equal(t, formatDate(returned), *report.History[2].ReturnDate)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetPatronBorrowedBooks(gomock.Any(), "123456").Return(nil, errors.New("db down"))
		repo.EXPECT().GetPatronBorrowHistory(gomock.Any(), "123456").Return(nil, nil).AnyTimes()

		report := svc.PatronStatusReport(ctx, "123456")
		require.Equal(t, "Database error occurred while building the report.", report.Status)
	})
}
