package enum

// AccountStatus represents the state of a receivable or payable entry
type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusPaid      AccountStatus = "paid"
	AccountStatusOverdue   AccountStatus = "overdue"
	AccountStatusCancelled AccountStatus = "cancelled"
)

// Valid reports whether the value is a known account status
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusPending, AccountStatusPaid, AccountStatusOverdue, AccountStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition to the target status is allowed.
// Pending may become overdue and back; paid and cancelled are terminal.
func (s AccountStatus) CanTransitionTo(target AccountStatus) bool {
	switch s {
	case AccountStatusPending:
		return target == AccountStatusPaid || target == AccountStatusOverdue || target == AccountStatusCancelled
	case AccountStatusOverdue:
		return target == AccountStatusPaid || target == AccountStatusPending || target == AccountStatusCancelled
	}
	return false
}
