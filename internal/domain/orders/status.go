package orders

// OrderStatus is an open enumeration: unknown values read from storage are
// carried through unchanged.
type OrderStatus string

const (
	OrderStatusNew                OrderStatus = "NEW"
	OrderStatusValidationPending  OrderStatus = "VALIDATION_PENDING"
	OrderStatusValidated          OrderStatus = "VALIDATED"
	OrderStatusAllocated          OrderStatus = "ALLOCATED"
	OrderStatusPartiallyAllocated OrderStatus = "PARTIALLY_ALLOCATED"
	OrderStatusPickedUp           OrderStatus = "PICKED_UP"
	OrderStatusDelivered          OrderStatus = "DELIVERED"
	OrderStatusCanceled           OrderStatus = "CANCELED"
)

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusNew:                {},
	OrderStatusValidationPending:  {},
	OrderStatusValidated:          {},
	OrderStatusAllocated:          {},
	OrderStatusPartiallyAllocated: {},
	OrderStatusPickedUp:           {},
	OrderStatusDelivered:          {},
	OrderStatusCanceled:           {},
}

func (s OrderStatus) IsKnown() bool {
	_, ok := knownOrderStatuses[s]
	return ok
}

// OrderStatuses lists the known order statuses in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusNew,
		OrderStatusValidationPending,
		OrderStatusValidated,
		OrderStatusAllocated,
		OrderStatusPartiallyAllocated,
		OrderStatusPickedUp,
		OrderStatusDelivered,
		OrderStatusCanceled,
	}
}

type LineStatus string

const (
	LineStatusNew                LineStatus = "NEW"
	LineStatusAllocated          LineStatus = "ALLOCATED"
	LineStatusPartiallyAllocated LineStatus = "PARTIALLY_ALLOCATED"
	LineStatusBackordered        LineStatus = "BACKORDERED"
	LineStatusCanceled           LineStatus = "CANCELED"
)

var knownLineStatuses = map[LineStatus]struct{}{
	LineStatusNew:                {},
	LineStatusAllocated:          {},
	LineStatusPartiallyAllocated: {},
	LineStatusBackordered:        {},
	LineStatusCanceled:           {},
}

func (s LineStatus) IsKnown() bool {
	_, ok := knownLineStatuses[s]
	return ok
}
