package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleStaff.IsValid())
	assert.True(t, RoleAgent.IsValid())
	assert.True(t, RoleCustomer.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_SelfRegisterable(t *testing.T) {
	assert.True(t, RoleAgent.SelfRegisterable())
	assert.True(t, RoleCustomer.SelfRegisterable())
	assert.False(t, RoleAdmin.SelfRegisterable())
	assert.False(t, RoleStaff.SelfRegisterable())
}

func TestUserStatus_IsValid(t *testing.T) {
	assert.True(t, UserStatusPending.IsValid())
	assert.True(t, UserStatusActive.IsValid())
	assert.False(t, UserStatus("suspended").IsValid())
}
