package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tTrmc/library-service/library/internal/payment"
)

func TestSimulatedGateway_ProcessPayment(t *testing.T) {
	t.Parallel()
	gw := payment.NewSimulatedGateway()
	ctx := context.Background()

	res, err := gw.ProcessPayment(ctx, "123456", 6.505, "Late fee for 1984")
	require.NoError(t, err)
	require.Equal(t, payment.StatusSuccess, res.Status)
	require.NotEmpty(t, res.TransactionID)
	require.Equal(t, 6.5, res.Amount)
	require.Equal(t, "123456", res.PatronID)
}

func TestSimulatedGateway_ProcessPayment_Declined(t *testing.T) {
	t.Parallel()
	gw := payment.NewSimulatedGateway()

	res, err := gw.ProcessPayment(context.Background(), "123456", 0, "")
	require.NoError(t, err)
	require.Equal(t, payment.StatusDeclined, res.Status)
	require.Empty(t, res.TransactionID)
}

func TestSimulatedGateway_RefundPayment(t *testing.T) {
	t.Parallel()
	gw := payment.NewSimulatedGateway()
	ctx := context.Background()

	paid, err := gw.ProcessPayment(ctx, "123456", 10, "Late fee for 1984")
	require.NoError(t, err)

	refund, err := gw.RefundPayment(ctx, paid.TransactionID, 10)
	require.NoError(t, err)
	require.Equal(t, payment.StatusRefunded, refund.Status)
	require.NotEqual(t, paid.TransactionID, refund.TransactionID)
	require.Equal(t, "123456", refund.PatronID)
}

func TestSimulatedGateway_RefundPayment_Errors(t *testing.T) {
	t.Parallel()
	gw := payment.NewSimulatedGateway()
	ctx := context.Background()

	_, err := gw.RefundPayment(ctx, "unknown", 5)
	require.ErrorIs(t, err, payment.ErrGateway)

	paid, err := gw.ProcessPayment(ctx, "123456", 5, "")
	require.NoError(t, err)

	_, err = gw.RefundPayment(ctx, paid.TransactionID, 0)
	require.ErrorIs(t, err, payment.ErrGateway)

	_, err = gw.RefundPayment(ctx, paid.TransactionID, 5.01)
	require.ErrorIs(t, err, payment.ErrGateway)
}
