package sales

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/models"
)

// SalesUC represents the order and payment usecase interface
type SalesUC interface {
	// orders
	ListOrders(ctx context.Context, params models.ListParams) (*models.OrderPage, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error)
	UploadShipmentProof(ctx context.Context, id int64, proof *models.FileUpload) (*models.Order, error)

	// payments
	ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error)
	CreatePayment(ctx context.Context, orderID int64, req *models.PaymentRequest) (*models.Payment, error)
}
