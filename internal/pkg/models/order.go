package models

// Order is a sales order
type Order struct {
	ID            int64       `json:"id"`
	Sales         *User       `json:"sales,omitempty"`
	Customer      *Customer   `json:"customer,omitempty"`
	Shipper       *User       `json:"shipper"`
	Collector     *User       `json:"collector"`
	Items         []OrderItem `json:"items"`
	Payments      []Payment   `json:"payments"`
	Quantity      int         `json:"quantity"`
	TotalPrice    float64     `json:"total_price"`
	Status        string      `json:"status"`
	Paid          float64     `json:"paid"`
	Remaining     float64     `json:"remaining"`
	ShippedAt     *string     `json:"shipped_at"`
	Note          *string     `json:"note"`
	File          *string     `json:"file"`
	ShipmentProof *string     `json:"bukti_pengiriman"`
	Discount      float64     `json:"discount,omitempty"`
	IsPercentage  bool        `json:"is_percentage,omitempty"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
}

// OrderItem is a line in an order
type OrderItem struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
	Price        float64 `json:"price"`
	Returns      int     `json:"returns"`
	Discount     float64 `json:"discount,omitempty"`
	IsPercentage bool    `json:"is_percentage,omitempty"`
}

// Customer is the store an order is delivered to
type Customer struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	StoreName    string  `json:"store_name"`
	StoreAddress *string `json:"store_address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
}

// OrderPage is a page of orders
type OrderPage struct {
	Data []Order  `json:"data"`
	Meta PageMeta `json:"meta"`
}

// OrderStatusRequest changes the status of an order
type OrderStatusRequest struct {
	Status string `json:"status"`
}
