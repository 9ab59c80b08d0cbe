package enum

// PurchaseStatus represents the lifecycle state of a purchase order
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusDelivered PurchaseStatus = "delivered"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// Valid reports whether the value is a known purchase status
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusDelivered, PurchaseStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition to the target status is allowed.
// Delivered and cancelled are terminal, so a purchase can be delivered at most once.
func (s PurchaseStatus) CanTransitionTo(target PurchaseStatus) bool {
	if s != PurchaseStatusPending {
		return false
	}
	return target == PurchaseStatusDelivered || target == PurchaseStatusCancelled
}
