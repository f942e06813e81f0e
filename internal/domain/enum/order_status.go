package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the kitchen status of an order
type OrderStatus int

const (
	OrderStatusPreparing OrderStatus = 0
	OrderStatusServed    OrderStatus = 1
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPreparing:
		return "preparing"
	case OrderStatusServed:
		return "served"
	default:
		return "unknown"
	}
}

// Toggle flips preparing and served. There is no third state.
func (s OrderStatus) Toggle() OrderStatus {
	if s == OrderStatusPreparing {
		return OrderStatusServed
	}
	return OrderStatusPreparing
}

// Rank orders statuses for the kitchen board: preparing before served.
func (s OrderStatus) Rank() int {
	if s == OrderStatusPreparing {
		return 0
	}
	return 1
}

func (s OrderStatus) IsValid() bool {
	return s == OrderStatusPreparing || s == OrderStatusServed
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
	switch str {
	case "preparing":
		*s = OrderStatusPreparing
	case "served":
		*s = OrderStatusServed
	default:
		return fmt.Errorf("unknown order status %q", str)
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPreparing
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
