package domain

import "github.com/shopspring/decimal"

// ItemsSubtotal sums price*quantity over the items using decimal arithmetic.
func (o Order) ItemsSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

// TotalMatchesItems reports whether TotalPrice equals the items subtotal.
// The caller-supplied total is never recomputed.
func (o Order) TotalMatchesItems() bool {
	return decimal.NewFromFloat(o.TotalPrice).Equal(o.ItemsSubtotal())
}
