package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxType records whether an order's line totals already include tax.
type TaxType int

const (
	TaxTypeExclusive TaxType = 0
	TaxTypeInclusive TaxType = 1
)

func (t TaxType) String() string {
	if t == TaxTypeInclusive {
		return "incl"
	}
	return "excl"
}

// IsInclusive reports whether line totals carry tax already.
func (t TaxType) IsInclusive() bool {
	return t == TaxTypeInclusive
}

func (t TaxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts "incl"/"excl", the long forms and the integer code.
func (t *TaxType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxType(i)
		return nil
	}
	switch str {
	case "incl", "inclusive", "Inclusive":
		*t = TaxTypeInclusive
	default:
		*t = TaxTypeExclusive
	}
	return nil
}

func (t TaxType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxTypeExclusive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TaxType(v)
	case int:
		*t = TaxType(v)
	}
	return nil
}
