package sales

import (
	"context"

	"github.com/dmpt/absensi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dmpt/absensi/services/sales SalesGW

// SalesGW defines the backend calls used by the sales usecase
type SalesGW interface {
	ListOrders(ctx context.Context, params models.ListParams) (*models.OrderPage, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, req *models.OrderStatusRequest) (*models.Order, error)
	UploadShipmentProof(ctx context.Context, id int64, proof *models.FileUpload) (*models.Order, error)

	ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error)
	CreatePayment(ctx context.Context, orderID int64, req *models.PaymentRequest) (*models.Payment, error)
}
