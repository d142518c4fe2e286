package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Basket is the result of one randomizer run.
// Remainder is always Target minus the sum of the items' full prices, so it goes
// negative when the last pick overshoots.
type Basket struct {
	Items     []CatalogItem   `json:"items"`
	Target    decimal.Decimal `json:"target"`
	Remainder decimal.Decimal `json:"remainder"`
	Attempts  int             `json:"attempts"`
}

type basketJSON struct {
	Items     []CatalogItem `json:"items"`
	Target    amount        `json:"target"`
	Remainder amount        `json:"remainder"`
	Attempts  int           `json:"attempts"`
}

// MarshalJSON writes money fields as plain numbers
func (b Basket) MarshalJSON() ([]byte, error) {
	return json.Marshal(basketJSON{
		Items:     b.Items,
		Target:    amount(b.Target),
		Remainder: amount(b.Remainder),
		Attempts:  b.Attempts,
	})
}

func (b *Basket) UnmarshalJSON(data []byte) error {
	var raw basketJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Basket{
		Items:     raw.Items,
		Target:    decimal.Decimal(raw.Target),
		Remainder: decimal.Decimal(raw.Remainder),
		Attempts:  raw.Attempts,
	}
	return nil
}

// Total returns the sum of full prices of the items in the basket
func (b Basket) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.FullPrice)
	}
	return total
}

// Transaction is a generated basket stamped for reporting
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	Category  Category  `json:"category"`
	Basket    Basket    `json:"basket"`
	CreatedAt time.Time `json:"createdAt"`
}

// TransactionSummary is one row of the transaction history
type TransactionSummary struct {
	ID        uuid.UUID       `json:"id"`
	Category  Category        `json:"category"`
	Target    decimal.Decimal `json:"target"`
	Total     decimal.Decimal `json:"total"`
	Remainder decimal.Decimal `json:"remainder"`
	ItemCount int             `json:"itemCount"`
	CreatedAt time.Time       `json:"createdAt"`
}

type transactionSummaryJSON struct {
	ID        uuid.UUID `json:"id"`
	Category  Category  `json:"category"`
	Target    amount    `json:"target"`
	Total     amount    `json:"total"`
	Remainder amount    `json:"remainder"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalJSON writes money fields as plain numbers
func (s TransactionSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionSummaryJSON{
		ID:        s.ID,
		Category:  s.Category,
		Target:    amount(s.Target),
		Total:     amount(s.Total),
		Remainder: amount(s.Remainder),
		ItemCount: s.ItemCount,
		CreatedAt: s.CreatedAt,
	})
}

func (s *TransactionSummary) UnmarshalJSON(data []byte) error {
	var raw transactionSummaryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = TransactionSummary{
		ID:        raw.ID,
		Category:  raw.Category,
		Target:    decimal.Decimal(raw.Target),
		Total:     decimal.Decimal(raw.Total),
		Remainder: decimal.Decimal(raw.Remainder),
		ItemCount: raw.ItemCount,
		CreatedAt: raw.CreatedAt,
	}
	return nil
}

// Summary condenses t for history listings
func (t Transaction) Summary() TransactionSummary {
	return TransactionSummary{
		ID:        t.ID,
		Category:  t.Category,
		Target:    t.Basket.Target,
		Total:     t.Basket.Total(),
		Remainder: t.Basket.Remainder,
		ItemCount: len(t.Basket.Items),
		CreatedAt: t.CreatedAt,
	}
}

// TransactionFilter narrows a history listing. Zero values match everything.
type TransactionFilter struct {
	Category Category
	From     time.Time
	To       time.Time
	Limit    int
}

// Matches reports whether s passes the category and date filters
func (f TransactionFilter) Matches(s TransactionSummary) bool {
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	if !f.From.IsZero() && s.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && s.CreatedAt.After(f.To) {
		return false
	}
	return true
}
