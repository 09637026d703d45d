package handler

import (
	"context"

	"github.com/tTrmc/library-service/library/internal/model"
	"github.com/tTrmc/library-service/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	AddBook(ctx context.Context, title, author, isbn string, totalCopies int) (bool, string)
	BorrowBook(ctx context.Context, patronID string, bookID int) (bool, string)
	ReturnBook(ctx context.Context, patronID string, bookID int) (bool, string)
	CalculateLateFee(ctx context.Context, patronID string, bookID int) model.LateFeeInfo
	SearchBooks(ctx context.Context, term, searchType string) []model.Book
	PatronStatusReport(ctx context.Context, patronID string) model.StatusReport
	PayLateFees(ctx context.Context, patronID string, bookID int) model.PaymentOutcome
	RefundLateFeePayment(ctx context.Context, transactionID string, amount float64) model.PaymentOutcome
}

var _ LibraryService = (*service.Service)(nil)
