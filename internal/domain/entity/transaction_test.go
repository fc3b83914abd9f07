package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementFor(t *testing.T) {
	deposit, ok := SettlementFor(TransactionTypeAgentDeposit)
	require.True(t, ok)
	assert.Equal(t, ProfileKindAgent, deposit.Profile)
	assert.Equal(t, DirectionCredit, deposit.Direction)
	assert.Equal(t, RoleAgent, deposit.CreatorRole)

	withdraw, ok := SettlementFor(TransactionTypeCustomerWithdraw)
	require.True(t, ok)
	assert.Equal(t, ProfileKindCustomer, withdraw.Profile)
	assert.Equal(t, DirectionDebit, withdraw.Direction)
	assert.Equal(t, RoleCustomer, withdraw.CreatorRole)

	_, ok = SettlementFor(TransactionType("bonus"))
	assert.False(t, ok)
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, TransactionTypeAgentDeposit.IsValid())
	assert.True(t, TransactionTypeCustomerWithdraw.IsValid())
	assert.False(t, TransactionType("").IsValid())
	assert.False(t, TransactionType("refund").IsValid())
}

func TestTransactionStatus_IsValid(t *testing.T) {
	assert.True(t, TransactionStatusPending.IsValid())
	assert.True(t, TransactionStatusApproved.IsValid())
	assert.True(t, TransactionStatusRejected.IsValid())
	assert.False(t, TransactionStatus("cancelled").IsValid())
}
