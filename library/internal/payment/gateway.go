package payment

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -source=gateway.go -destination=mocks/mock.go

const (
	StatusSuccess  = "success"
	StatusDeclined = "declined"
	StatusRefunded = "refunded"
)

// ErrGateway marks failures reported by the remote payment provider.
var ErrGateway = errors.New("payment gateway error")

// Result is immutable once returned by the gateway.
type Result struct {
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	PatronID      string  `json:"patronId"`
	Description   string  `json:"description,omitempty"`
}

type Gateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount float64, description string) (Result, error)
	RefundPayment(ctx context.Context, transactionID string, amount float64) (Result, error)
}

// SimulatedGateway emulates a third-party payment API in memory.
// Production deployments swap it for a real client behind the same interface.
type SimulatedGateway struct {
	mu           sync.Mutex
	transactions map[string]Result
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		transactions: make(map[string]Result),
	}
}

func (g *SimulatedGateway) ProcessPayment(_ context.Context, patronID string, amount float64, description string) (Result, error) {
	if amount <= 0 {
		return Result{Status: StatusDeclined, PatronID: patronID}, nil
	}

	res := Result{
		TransactionID: uuid.NewString(),
		Status:        StatusSuccess,
		Amount:        round2(amount),
		PatronID:      patronID,
		Description:   description,
	}

	g.mu.Lock()
	g.transactions[res.TransactionID] = res
	g.mu.Unlock()

	return res, nil
}

func (g *SimulatedGateway) RefundPayment(_ context.Context, transactionID string, amount float64) (Result, error) {
	g.mu.Lock()
	original, ok := g.transactions[transactionID]
	g.mu.Unlock()

	if transactionID == "" || !ok {
		return Result{}, errors.Wrap(ErrGateway, "transaction not found")
	}
	if amount <= 0 || amount > original.Amount {
		return Result{}, errors.Wrap(ErrGateway, "invalid refund amount")
	}

	return Result{
		TransactionID: uuid.NewString(),
		Status:        StatusRefunded,
		Amount:        round2(amount),
		PatronID:      original.PatronID,
	}, nil
}

// round2 rounds to cents based on the decimal representation of v, so a
// value stored just below x.xx5 rounds down rather than up.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
