package wallet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/wallet"
)

func TestService_Recharge(t *testing.T) {
	amount := money.MustParse("50.00")
	after := money.MustParse("80.00")

	type testCase struct {
		name        string
		amount      money.Money
		setupMock   func(repo *wallet.MockRepository, obs *wallet.MockObserver)
		wantBalance money.Money
		wantErr     error
	}

	tests := []testCase{
		{
			name:   "Credits and reports",
			amount: amount,
			setupMock: func(repo *wallet.MockRepository, obs *wallet.MockObserver) {
				repo.EXPECT().Credit(gomock.Any(), int64(1), amount).Return(after, nil)
				obs.EXPECT().WalletCredited(wallet.SourceRecharge, amount)
			},
			wantBalance: after,
		},
		{
			name:      "Zero amount",
			amount:    money.Zero,
			setupMock: func(*wallet.MockRepository, *wallet.MockObserver) {},
			wantErr:   wallet.ErrInvalidAmount,
		},
		{
			name:      "Negative amount",
			amount:    money.MustParse("-5.00"),
			setupMock: func(*wallet.MockRepository, *wallet.MockObserver) {},
			wantErr:   wallet.ErrInvalidAmount,
		},
		{
			name:   "Unknown client",
			amount: amount,
			setupMock: func(repo *wallet.MockRepository, _ *wallet.MockObserver) {
				repo.EXPECT().Credit(gomock.Any(), int64(1), amount).Return(money.Zero, wallet.ErrNotFound)
			},
			wantErr: wallet.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := wallet.NewMockRepository(ctrl)
			obs := wallet.NewMockObserver(ctrl)
			tt.setupMock(repo, obs)

			got, err := wallet.NewService(repo, obs).Recharge(context.Background(), 1, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantBalance.Equal(got))
		})
	}
}

func TestService_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := wallet.NewMockRepository(ctrl)

	repo.EXPECT().GetBalance(gomock.Any(), int64(9)).Return(money.Zero, wallet.ErrNotFound)

	_, err := wallet.NewService(repo, nil).Balance(context.Background(), 9)
	assert.ErrorIs(t, err, wallet.ErrNotFound)
}

func TestService_RechargeBatch(t *testing.T) {
	topUps := []wallet.TopUp{
		{ClientID: 1, Amount: money.MustParse("10.00"), Reference: "R-1"},
		{ClientID: 2, Amount: money.MustParse("2.50"), Reference: "R-2"},
	}

	t.Run("All credited in one tx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := wallet.NewMockRepository(ctrl)
		tx := wallet.NewMockBatchTx(ctrl)
		obs := wallet.NewMockObserver(ctrl)

		repo.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Credit(gomock.Any(), int64(1), topUps[0].Amount).Return(topUps[0].Amount, nil)
		tx.EXPECT().Credit(gomock.Any(), int64(2), topUps[1].Amount).Return(topUps[1].Amount, nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)
		obs.EXPECT().WalletCredited(wallet.SourceImport, gomock.Any()).Times(2)

		res, err := wallet.NewService(repo, obs).RechargeBatch(context.Background(), topUps)
		require.NoError(t, err)

		assert.Equal(t, 2, res.Credited)
		assert.Equal(t, "12.50", res.Total.String())
	})

	t.Run("Unknown client aborts batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := wallet.NewMockRepository(ctrl)
		tx := wallet.NewMockBatchTx(ctrl)

		repo.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Credit(gomock.Any(), int64(1), topUps[0].Amount).Return(topUps[0].Amount, nil)
		tx.EXPECT().Credit(gomock.Any(), int64(2), topUps[1].Amount).Return(money.Zero, wallet.ErrNotFound)
		tx.EXPECT().Rollback().Return(nil)

		_, err := wallet.NewService(repo, nil).RechargeBatch(context.Background(), topUps)
		assert.ErrorIs(t, err, wallet.ErrNotFound)
		assert.ErrorContains(t, err, "top-up 2")
	})

	t.Run("Invalid amount rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := wallet.NewMockRepository(ctrl)

		bad := append([]wallet.TopUp{}, topUps...)
		bad[1].Amount = money.Zero

		_, err := wallet.NewService(repo, nil).RechargeBatch(context.Background(), bad)
		assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
	})

	t.Run("Commit failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := wallet.NewMockRepository(ctrl)
		tx := wallet.NewMockBatchTx(ctrl)

		repo.EXPECT().BeginBatch(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).Return(money.Zero, nil).Times(2)
		tx.EXPECT().Commit().Return(errors.New("connection reset"))
		tx.EXPECT().Rollback().Return(nil)

		_, err := wallet.NewService(repo, nil).RechargeBatch(context.Background(), topUps)
		assert.ErrorContains(t, err, "commit batch")
	})
}
