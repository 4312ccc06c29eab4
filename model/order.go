package model

import "fmt"

// OrderState is the derived classification of an order's completion
type OrderState int8

// These are the available order states
const (
	OrderStateFilled          OrderState = 0
	OrderStatePending         OrderState = 1
	OrderStatePartiallyFilled OrderState = 2
)

// String is the stringer function
func (s OrderState) String() string {
	if s == OrderStateFilled {
		return "filled"
	} else if s == OrderStatePending {
		return "pending"
	} else if s == OrderStatePartiallyFilled {
		return "partially_filled"
	}
	return "error, unrecognized OrderState"
}

// ResolveOrderState infers an order's fill state purely from the requested vs.
// executed amount. The exchange's own status field is legacy and unreliable, so
// it is never consulted; every parse site recomputes the state through here.
// amount == filled covers the zero/zero case, which is treated as fully filled
// (an order cancelled before any fill is a completed no-op).
func ResolveOrderState(amount float64, filled float64) OrderState {
	if amount == filled {
		return OrderStateFilled
	}
	if filled == 0 {
		return OrderStatePending
	}
	return OrderStatePartiallyFilled
}

// Order is the canonical view of an exchange order
type Order struct {
	ID           string
	Symbol       string
	Action       OrderAction
	Amount       *Number
	AmountFilled *Number
	Price        *Number
	OrderDate    *Timestamp
	State        OrderState
}

// String is the stringer function
func (o Order) String() string {
	tsString := "<nil>"
	if o.OrderDate != nil {
		tsString = fmt.Sprintf("%d", o.OrderDate.AsInt64())
	}

	return fmt.Sprintf("Order[id=%s, symbol=%s, action=%s, amount=%s, filled=%s, price=%s, date=%s, state=%s]",
		o.ID,
		o.Symbol,
		o.Action,
		o.Amount.AsString(),
		o.AmountFilled.AsString(),
		o.Price.AsString(),
		tsString,
		o.State,
	)
}

// OrderRequest describes an order to be placed on an exchange. ExtraParams are
// merged verbatim into the exchange payload for caller-supplied flags.
type OrderRequest struct {
	Symbol      string
	Action      OrderAction
	Price       *Number
	Amount      *Number
	ExtraParams map[string]string
}
