package entity

import "slices"

// Permission is an opaque capability string checked by downstream handlers.
type Permission string

const (
	PermissionOperatorView   Permission = "operator.view"
	PermissionOperatorManage Permission = "operator.manage"
	PermissionUserView       Permission = "user.view"
	PermissionUserEdit       Permission = "user.edit"
	PermissionAccountingView Permission = "accounting.view"
	PermissionReportsView    Permission = "reports.view"
)

// String returns the string representation of the Permission.
func (p Permission) String() string {
	return string(p)
}

// PermissionSet is an ordered list of capabilities.
type PermissionSet []Permission

// Contains checks if the set holds a specific permission.
func (ps PermissionSet) Contains(p Permission) bool {
	return slices.Contains(ps, p)
}

// ToStrings converts the set to []string for JSON and token claims.
func (ps PermissionSet) ToStrings() []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = p.String()
	}

	return result
}

// DerivePermissions maps principal state to its fixed capability list.
// The result is rebuilt on every call and never stored on the principal.
func DerivePermissions(p *Principal) PermissionSet {
	if p == nil {
		return PermissionSet{}
	}

	switch p.Kind {
	case PrincipalKindOperator:
		return PermissionSet{PermissionOperatorView, PermissionOperatorManage}
	case PrincipalKindUser:
		if p.IsActive && p.Status == UserStatusActive {
			return PermissionSet{
				PermissionUserView,
				PermissionUserEdit,
				PermissionAccountingView,
				PermissionReportsView,
			}
		}
	}

	return PermissionSet{}
}
