package models

import "github.com/shopspring/decimal"

// amount encodes a decimal as a plain JSON number. Decoding accepts numbers
// and quoted strings.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *amount) UnmarshalJSON(data []byte) error {
	return (*decimal.Decimal)(a).UnmarshalJSON(data)
}
