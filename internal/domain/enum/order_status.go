package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus mirrors the order lifecycle of the store.
type OrderStatus int

// OrderStatusPending is the zero value. Stored values index orderStatusNames.
const OrderStatusPending OrderStatus = 0

var orderStatusNames = [...]string{"pending", "processing", "on-hold", "completed", "cancelled", "refunded", "failed"}

func (s OrderStatus) String() string {
	if int(s) < 0 || int(s) >= len(orderStatusNames) {
		return orderStatusNames[OrderStatusPending]
	}
	return orderStatusNames[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	*s = OrderStatusPending
	for i, name := range orderStatusNames {
		if name == str {
			*s = OrderStatus(i)
			break
		}
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
