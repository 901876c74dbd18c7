package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePermissions(t *testing.T) {
	userPerms := []string{"user.view", "user.edit", "accounting.view", "reports.view"}

	tests := []struct {
		name      string
		principal *Principal
		want      []string
	}{
		{
			name:      "nil principal",
			principal: nil,
			want:      []string{},
		},
		{
			name:      "operator",
			principal: &Principal{Kind: PrincipalKindOperator, IsActive: true},
			want:      []string{"operator.view", "operator.manage"},
		},
		{
			name:      "active user",
			principal: &Principal{Kind: PrincipalKindUser, IsActive: true, Status: UserStatusActive},
			want:      userPerms,
		},
		{
			name:      "suspended user",
			principal: &Principal{Kind: PrincipalKindUser, IsActive: true, Status: UserStatusSuspended},
			want:      []string{},
		},
		{
			name:      "deactivated user",
			principal: &Principal{Kind: PrincipalKindUser, IsActive: false, Status: UserStatusActive},
			want:      []string{},
		},
		{
			name:      "unknown kind",
			principal: &Principal{Kind: "ROBOT", IsActive: true, Status: UserStatusActive},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePermissions(tt.principal).ToStrings())
		})
	}
}

func TestDerivePermissions_NotShared(t *testing.T) {
	p := &Principal{Kind: PrincipalKindOperator, IsActive: true}

	first := DerivePermissions(p)
	first[0] = "tampered"

	assert.True(t, DerivePermissions(p).Contains(PermissionOperatorView))
}

func TestPrincipalProjections(t *testing.T) {
	user := &User{ID: 3, Username: "bob", FullName: "Bob B", IsActive: true, Status: UserStatusExpired}
	up := user.Principal()
	assert.Equal(t, PrincipalKindUser, up.Kind)
	assert.Equal(t, "Bob B", up.DisplayName)
	assert.False(t, up.CanAuthenticate())
	assert.Equal(t, "bob", up.ContactAddress())

	op := &Operator{ID: 1, Username: "root", Email: "root@example.com", IsActive: true}
	opp := op.Principal()
	assert.True(t, opp.IsOperator())
	assert.Equal(t, "root", opp.DisplayName)
	assert.True(t, opp.CanAuthenticate())
	assert.Equal(t, "root@example.com", opp.ContactAddress())
}
