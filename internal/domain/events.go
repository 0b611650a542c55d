package domain

// Типы событий, которые сервис кладёт в outbox.
const (
	EventTableProvisioned  = "table.provisioned"
	EventTableStateUpdated = "table.state_updated"
	EventOrderCreated      = "order.created"
	EventOrderUpdated      = "order.updated"
	EventOrderItemRemoved  = "order.item_removed"
	EventSaleRecorded      = "sale.recorded"
)

// Типы агрегатов для outbox.
const (
	AggregateTypeTable = "table"
	AggregateTypeOrder = "order"
	AggregateTypeSale  = "sale"
)

// OrderEventPayload: тело событий order.*.
type OrderEventPayload struct {
	OrderID    int64  `json:"order_id"`
	UserID     int64  `json:"user_id"`
	TableID    int64  `json:"table_id"`
	TotalPrice int64  `json:"total_price"`
	ItemCount  int    `json:"item_count"`
	ProductID  int64  `json:"product_id,omitempty"`
	Email      string `json:"email,omitempty"`
}

// TableEventPayload: тело событий table.*.
type TableEventPayload struct {
	TableID       int64  `json:"table_id"`
	Name          string `json:"name"`
	Quantity      int32  `json:"quantity"`
	State         string `json:"state"`
	ActiveOrderID *int64 `json:"active_order_id,omitempty"`
}

// SaleEventPayload: тело события sale.recorded.
type SaleEventPayload struct {
	SaleID     int64  `json:"sale_id"`
	UserName   string `json:"user_name"`
	TableName  string `json:"table_name"`
	Date       string `json:"date"`
	Tip        int64  `json:"tip"`
	TotalPrice int64  `json:"total_price"`
}
