package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/onbus"
	"github.com/khawla-14/markyticket/internal/ticket"
	"github.com/khawla-14/markyticket/internal/ticket/memstore"
)

const (
	clientID   int64 = 1
	otherID    int64 = 2
	receiverID int64 = 3
	trajetID   int64 = 7
)

func setup(t *testing.T, balance string, opts ...ticket.Option) (*ticket.Service, *memstore.Store) {
	t.Helper()

	store := memstore.New()
	store.AddClient(clientID, money.MustParse(balance))
	store.AddClient(otherID, money.MustParse("100.00"))
	store.AddTrajet(ticket.Trajet{
		ID:         trajetID,
		Name:       "Alger - Oran",
		Price:      money.MustParse("25.00"),
		Status:     ticket.TrajetInProgress,
		ReceiverID: receiverID,
	})

	return ticket.NewService(store, onbus.NewCodec("test-secret"), opts...), store
}

func TestPurchase_DebitsExactPrice(t *testing.T) {
	svc, store := setup(t, "30.00")

	res, err := svc.Purchase(context.Background(), clientID, trajetID)
	require.NoError(t, err)

	assert.Equal(t, ticket.StatusPending, res.Ticket.Status)
	assert.Equal(t, "25.00", res.Ticket.Price.String())
	assert.Equal(t, "5.00", res.Balance.String())
	assert.Equal(t, "5.00", store.Balance(clientID).String())

	got, err := svc.GetStatus(context.Background(), res.Ticket.Code)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusPending, got.Status)
}

func TestPurchase_InsufficientFundsLeavesNoTrace(t *testing.T) {
	svc, store := setup(t, "20.00")

	_, err := svc.Purchase(context.Background(), clientID, trajetID)

	assert.ErrorIs(t, err, ticket.ErrInsufficientFunds)
	assert.Equal(t, "20.00", store.Balance(clientID).String())
	assert.Empty(t, store.Tickets())
}

func TestPurchase_PriceCapturedAtIssuance(t *testing.T) {
	svc, store := setup(t, "100.00")

	res, err := svc.Purchase(context.Background(), clientID, trajetID)
	require.NoError(t, err)

	store.AddTrajet(ticket.Trajet{
		ID:         trajetID,
		Price:      money.MustParse("40.00"),
		Status:     ticket.TrajetInProgress,
		ReceiverID: receiverID,
	})

	cancel, err := svc.Cancel(context.Background(), res.Ticket.Code, clientID)
	require.NoError(t, err)

	assert.Equal(t, "25.00", cancel.Ticket.Price.String())
	assert.Equal(t, "100.00", store.Balance(clientID).String())
}

func TestCancel_RefundsOnce(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	res, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)

	first, err := svc.Cancel(ctx, res.Ticket.Code, clientID)
	require.NoError(t, err)
	assert.Equal(t, "30.00", first.Balance.String())

	_, err = svc.Cancel(ctx, res.Ticket.Code, clientID)
	assert.ErrorIs(t, err, ticket.ErrInvalidState)
	assert.Equal(t, "30.00", store.Balance(clientID).String())
}

func TestCancel_ValidatedTicketIsFinal(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	res, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, res.Ticket.Code, receiverID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, res.Ticket.Code, clientID)
	assert.ErrorIs(t, err, ticket.ErrInvalidState)
	assert.Equal(t, "5.00", store.Balance(clientID).String())

	_, err = svc.Validate(ctx, res.Ticket.Code, receiverID)
	assert.ErrorIs(t, err, ticket.ErrInvalidState)
	assert.Equal(t, "5.00", store.Balance(clientID).String())
}

func TestLedger_PurchaseCancelThenValidate(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	res, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", res.Balance.String())
	assert.Equal(t, ticket.StatusPending, res.Ticket.Status)

	canceled, err := svc.Cancel(ctx, res.Ticket.Code, clientID)
	require.NoError(t, err)
	assert.Equal(t, "30.00", canceled.Balance.String())
	assert.Equal(t, ticket.StatusCanceled, canceled.Ticket.Status)

	_, err = svc.Validate(ctx, res.Ticket.Code, receiverID)
	assert.ErrorIs(t, err, ticket.ErrInvalidState)
	assert.Equal(t, "30.00", store.Balance(clientID).String())

	got, err := svc.GetStatus(ctx, res.Ticket.Code)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusCanceled, got.Status)
}

func TestCancel_OtherClientForbidden(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	res, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, res.Ticket.Code, otherID)
	assert.ErrorIs(t, err, ticket.ErrForbidden)
	assert.Equal(t, "100.00", store.Balance(otherID).String())

	got, err := svc.GetStatus(ctx, res.Ticket.Code)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusPending, got.Status)
}

func TestRedeem_CashSaleLeavesWalletUntouched(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	offer, err := svc.OfferOnBusCode(ctx, receiverID)
	require.NoError(t, err)

	tk, err := svc.RedeemOnBusCode(ctx, offer.Token, clientID)
	require.NoError(t, err)

	assert.Equal(t, ticket.StatusValidated, tk.Status)
	assert.Equal(t, "30.00", store.Balance(clientID).String())

	_, err = svc.Cancel(ctx, tk.Code, clientID)
	assert.ErrorIs(t, err, ticket.ErrInvalidState)
}

func TestRedeem_WalletSettlementDebits(t *testing.T) {
	svc, store := setup(t, "30.00", ticket.WithSettlement(ticket.SettlementWallet))
	ctx := context.Background()

	offer, err := svc.OfferOnBusCode(ctx, receiverID)
	require.NoError(t, err)

	_, err = svc.RedeemOnBusCode(ctx, offer.Token, clientID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", store.Balance(clientID).String())

	_, err = svc.RedeemOnBusCode(ctx, offer.Token, clientID)
	assert.ErrorIs(t, err, ticket.ErrInsufficientFunds)
	assert.Len(t, store.Tickets(), 1)
}

func TestRedeem_TokenDiesWithTrajet(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	offer, err := svc.OfferOnBusCode(ctx, receiverID)
	require.NoError(t, err)

	store.SetTrajetStatus(trajetID, ticket.TrajetFinished)

	_, err = svc.RedeemOnBusCode(ctx, offer.Token, clientID)
	assert.ErrorIs(t, err, ticket.ErrInvalidState)
	assert.Empty(t, store.Tickets())

	_, err = svc.OfferOnBusCode(ctx, receiverID)
	assert.ErrorIs(t, err, ticket.ErrNotFound)
}

func TestValidate_WrongReceiverForbidden(t *testing.T) {
	svc, _ := setup(t, "30.00")
	ctx := context.Background()

	res, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, res.Ticket.Code, receiverID+1)
	assert.ErrorIs(t, err, ticket.ErrForbidden)

	_, err = svc.Validate(ctx, "missing", receiverID)
	assert.ErrorIs(t, err, ticket.ErrNotFound)
}

func TestPurchase_CodeCollisionRetried(t *testing.T) {
	codes := []string{"dup", "dup", "fresh"}

	var n atomic.Int32

	svc, store := setup(t, "100.00", ticket.WithCodeGenerator(func() string {
		return codes[n.Add(1)-1]
	}))
	ctx := context.Background()

	first, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)
	assert.Equal(t, "dup", first.Ticket.Code)

	second, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)
	assert.Equal(t, "fresh", second.Ticket.Code)

	assert.Equal(t, "50.00", store.Balance(clientID).String())
	assert.Len(t, store.Tickets(), 2)
}

func TestPurchase_ConcurrentNeverOverdraws(t *testing.T) {
	svc, store := setup(t, "100.00")

	const attempts = 10

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)

	for range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Purchase(context.Background(), clientID, trajetID)

			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, ticket.ErrInsufficientFunds):
				rejected.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(4), succeeded.Load())
	assert.Equal(t, int32(attempts-4), rejected.Load())
	assert.Equal(t, "0.00", store.Balance(clientID).String())
	assert.Len(t, store.Tickets(), 4)
}

func TestCancel_ConcurrentRefundsOnce(t *testing.T) {
	svc, store := setup(t, "30.00")
	ctx := context.Background()

	res, err := svc.Purchase(ctx, clientID, trajetID)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)

	for range 5 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := svc.Cancel(ctx, res.Ticket.Code, clientID); err == nil {
				succeeded.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, "30.00", store.Balance(clientID).String())
}

func TestTx_RollbackRestoresState(t *testing.T) {
	store := memstore.New()
	store.AddClient(clientID, money.MustParse("30.00"))
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.Debit(ctx, clientID, money.MustParse("10.00"))
	require.NoError(t, err)

	for i := range 3 {
		require.NoError(t, tx.CreateTicket(ctx, &ticket.Ticket{
			Code:     fmt.Sprintf("t-%d", i),
			ClientID: clientID,
			Status:   ticket.StatusPending,
		}))
	}

	require.NoError(t, tx.UpdateTicketStatus(ctx, "t-0", ticket.StatusCanceled))
	require.NoError(t, tx.Rollback())
	require.NoError(t, tx.Rollback())

	assert.Equal(t, "30.00", store.Balance(clientID).String())
	assert.Empty(t, store.Tickets())
}

func TestTx_DebitGuardsBalance(t *testing.T) {
	store := memstore.New()
	store.AddClient(clientID, money.MustParse("5.00"))
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = tx.Debit(ctx, clientID, money.MustParse("5.01"))
	assert.ErrorIs(t, err, ticket.ErrInsufficientFunds)

	_, err = tx.Credit(ctx, otherID, money.MustParse("1.00"))
	assert.ErrorIs(t, err, ticket.ErrNotFound)
}
