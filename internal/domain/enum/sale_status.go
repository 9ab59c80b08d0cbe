package enum

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusPaid      SaleStatus = "paid"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Valid reports whether the value is a known sale status
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPaid, SaleStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition to the target status is allowed.
// Paid and cancelled are terminal.
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	if s != SaleStatusPending {
		return false
	}
	return target == SaleStatusPaid || target == SaleStatusCancelled
}
