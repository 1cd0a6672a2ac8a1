package constants

// Backend API routes, relative to the /api prefix
const (
	// Auth
	PathLogin  = "/login"
	PathLogout = "/logout"
	PathUser   = "/user"

	// Attendance
	PathAttendances = "/attendances"

	// Catalog
	PathProducts   = "/products"
	PathProduct    = "/products/%s" // Format: /products/{product_id}
	PathBrands     = "/brands"
	PathBrand      = "/brands/%s" // Format: /brands/{brand_id}
	PathCategories = "/categories"
	PathCategory   = "/categories/%s" // Format: /categories/{category_id}

	// Sales
	PathOrders        = "/orders"
	PathOrder         = "/orders/%d"          // Format: /orders/{order_id}
	PathOrderStatus   = "/orders/%d/status"   // Format: /orders/{order_id}/status
	PathOrderShipment = "/orders/%d/shipment" // Format: /orders/{order_id}/shipment
	PathOrderPayments = "/orders/%d/payments" // Format: /orders/{order_id}/payments
)

// Query parameters
const (
	QueryPage    = "page"
	QueryPerPage = "per_page"
	QuerySearch  = "search"
	QueryStatus  = "status"
)

// Order statuses accepted by the backend
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status in workflow order
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Payment methods
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodGiro     = "giro"
)
