package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tTrmc/library-service/library/internal/errs"
	"github.com/tTrmc/library-service/library/internal/model"
	"github.com/tTrmc/library-service/library/internal/payment"
)

// PayLateFees charges the patron's outstanding fee for a book through the
// payment gateway. Validation failures and a zero fee short-circuit before
// the gateway is ever invoked; gateway errors are reported, never propagated.
func (s *Service) PayLateFees(ctx context.Context, patronID string, bookID int) model.PaymentOutcome {
	ok, normalized, msg := validatePatronID(patronID)
	if !ok {
		return model.PaymentOutcome{Status: msg}
	}
	if bookID <= 0 {
		return model.PaymentOutcome{Status: "Invalid book ID."}
	}

	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("GetBookByID", zap.Error(err))
		}
		return model.PaymentOutcome{Status: "Book not found."}
	}

	fee := s.CalculateLateFee(ctx, normalized, bookID)
	if fee.FeeAmount <= 0 {
		return model.PaymentOutcome{Status: "No outstanding late fees for this book."}
	}

	var res payment.Result
	err = s.cb.Call(func() error {
		var callErr error
		res, callErr = s.gateway.ProcessPayment(ctx, normalized, fee.FeeAmount, "Late fee for "+book.Title)
		return callErr
	})
	if err != nil {
		s.log.Warn("ProcessPayment", zap.Error(err))
		return model.PaymentOutcome{Status: fmt.Sprintf("Payment failed: %s.", err.Error())}
	}

	if res.Status != payment.StatusSuccess {
		return model.PaymentOutcome{Status: "Payment was declined by the gateway."}
	}

	s.publishEvent(ctx, eventPayment(normalized, bookID, fee.FeeAmount, s.now()))

	return model.PaymentOutcome{
		Success:       true,
		Status:        "Payment processed successfully.",
		TransactionID: res.TransactionID,
	}
}

// RefundLateFeePayment reverses a prior late-fee charge. Amounts outside
// (0, 15] are rejected locally since no single fee can exceed the cap.
func (s *Service) RefundLateFeePayment(ctx context.Context, transactionID string, amount float64) model.PaymentOutcome {
	if strings.TrimSpace(transactionID) == "" {
		return model.PaymentOutcome{Status: "Invalid transaction ID."}
	}
	if amount <= 0 || amount > feeCap {
		return model.PaymentOutcome{Status: "Invalid refund amount."}
	}

	var res payment.Result
	err := s.cb.Call(func() error {
		var callErr error
		res, callErr = s.gateway.RefundPayment(ctx, transactionID, amount)
		return callErr
	})
	if err != nil {
		s.log.Warn("RefundPayment", zap.Error(err))
		return model.PaymentOutcome{Status: fmt.Sprintf("Refund failed: %s.", err.Error())}
	}

	return model.PaymentOutcome{
		Success:       true,
		Status:        "Refund processed successfully.",
		TransactionID: res.TransactionID,
	}
}
