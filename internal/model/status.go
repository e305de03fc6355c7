package model

import "fmt"

// Status is the fulfilment state of an order.
//
//	Order Placed ─> Processing ─> Shipped ─> Delivered
//
// The arrows show the usual flow only. Any valid status may be set from any
// other one; what the status controls is whether the order can still be edited.
type Status string

const (
	StatusOrderPlaced Status = "Order Placed"
	StatusProcessing  Status = "Processing"
	StatusShipped     Status = "Shipped"
	StatusDelivered   Status = "Delivered"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{
	StatusOrderPlaced,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
}

// ParseStatus converts a raw value into a Status, rejecting anything outside the lifecycle.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", NewValidationError(fmt.Sprintf("%s is not a valid status", s))
	}
	return status, nil
}

// IsValid reports whether s is one of the four lifecycle statuses.
func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// AllowsEdit reports whether an order in this status may still have its
// contents replaced or be cancelled. Shipped and Delivered orders are frozen.
func (s Status) AllowsEdit() bool {
	return s == StatusOrderPlaced || s == StatusProcessing
}

func (s Status) String() string {
	return string(s)
}
