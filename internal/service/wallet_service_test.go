package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

func TestTopUpAndSummary(t *testing.T) {
	f, alice, _ := twoUsers()
	ctx := context.Background()

	tx, err := f.walletSvc.TopUp(ctx, alice.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, models.TxTopup, tx.Type)

	summary, err := f.walletSvc.GetWallet(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, summary.Balance)
	require.Len(t, summary.Transactions, 1)
}

func TestTopUpValidation(t *testing.T) {
	f, alice, _ := twoUsers()
	ctx := context.Background()

	_, err := f.walletSvc.TopUp(ctx, alice.ID, 0)
	require.ErrorIs(t, err, apperrors.ErrBadAmount)
	_, err = f.walletSvc.TopUp(ctx, alice.ID, -5)
	require.ErrorIs(t, err, apperrors.ErrBadAmount)
	_, err = f.walletSvc.TopUp(ctx, "u_ghost", 10)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAwardCreditTagsSource(t *testing.T) {
	f, alice, _ := twoUsers()
	ctx := context.Background()

	require.NoError(t, f.walletSvc.AwardCredit(ctx, alice.ID, 10, "friend"))

	assert.Equal(t, 10.0, f.users.users[alice.ID].WalletBalance)
	require.Len(t, f.wallet.txs, 1)
	assert.Equal(t, models.TxReward, f.wallet.txs[0].Type)
	assert.Equal(t, "friend", f.wallet.txs[0].Source)
}
