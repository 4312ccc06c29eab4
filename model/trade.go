package model

import "fmt"

// Trade is one public trade on an exchange. The ID is exchange-assigned and is
// not guaranteed unique across pairs. Immutable once parsed.
type Trade struct {
	ID        int64
	Price     *Number
	Amount    *Number
	IsBuy     bool
	Timestamp *Timestamp
}

// String is the stringer function
func (t Trade) String() string {
	return fmt.Sprintf("Trade[id=%d, price=%s, amount=%s, isBuy=%v, ts=%d]",
		t.ID,
		t.Price.AsString(),
		t.Amount.AsString(),
		t.IsBuy,
		t.Timestamp.AsInt64(),
	)
}
