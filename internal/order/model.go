package order

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire and storage format of an order's delivery date.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component.
type Date struct{ time.Time }

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM-DD string; null leaves d unchanged.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Order is a customer's cake order (encomenda).
type Order struct {
	ID     int64  `json:"id"`
	Client string `json:"cliente"`
	Cake   string `json:"bolo"`
	Date   Date   `json:"data"`
	Price  int    `json:"preco"`
}
