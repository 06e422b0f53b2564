package wallet

import (
	"errors"

	"github.com/khawla-14/markyticket/internal/money"
)

var (
	ErrNotFound      = errors.New("client not found")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// TopUp is one credit to apply to a client's wallet.
type TopUp struct {
	ClientID  int64
	Amount    money.Money
	Reference string
}

type BatchResult struct {
	Credited int
	Total    money.Money
}

// Credit sources reported to the Observer.
const (
	SourceRecharge = "recharge"
	SourceImport   = "import"
)
