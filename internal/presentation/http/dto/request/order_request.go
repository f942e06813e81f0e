package request

// ConfirmOrderRequest is the cart sent from the order screen
type ConfirmOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"dive"`
}

// OrderItemRequest is one cart line
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"max=999"`
}

// ListOrdersRequest represents order list filters
type ListOrdersRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Status  string `form:"status" binding:"omitempty,oneof=preparing served"`
	TableID string `form:"table_id"`
}
