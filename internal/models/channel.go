package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Channel is the payment medium an amount moved through.
type Channel string

const (
	ChannelCash Channel = "cash"
	ChannelGpay Channel = "gpay"
)

// Valid reports whether c is one of the known payment channels.
func (c Channel) Valid() bool {
	return c == ChannelCash || c == ChannelGpay
}

// ChannelAmount is a form amount tagged with the channel it moved
// through. The entry service routes it into the matching cash/gpay
// column; amounts are never keyed by string concatenation.
type ChannelAmount struct {
	Channel Channel         `json:"channel"`
	Amount  decimal.Decimal `json:"amount"`
}

// Route assigns the amount to the cash or gpay destination field.
// A zero-value ChannelAmount (empty channel, zero amount) is a no-op
// so callers can leave unused form sections absent.
func (ca ChannelAmount) Route(cash, gpay *decimal.Decimal) error {
	if ca.Channel == "" && ca.Amount.IsZero() {
		return nil
	}
	switch ca.Channel {
	case ChannelCash:
		*cash = ca.Amount
	case ChannelGpay:
		*gpay = ca.Amount
	default:
		return fmt.Errorf("unknown payment channel: %q", ca.Channel)
	}
	return nil
}
