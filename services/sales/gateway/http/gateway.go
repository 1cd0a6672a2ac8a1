package gateway_http

import (
	"context"
	"fmt"

	"github.com/dmpt/absensi/internal/pkg/constants"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/models"
)

// HTTPGateway implements sales.SalesGW against the backend REST API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway for the sales service
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// ListOrders fetches one page of orders
func (g *HTTPGateway) ListOrders(ctx context.Context, params models.ListParams) (*models.OrderPage, error) {
	var page models.OrderPage
	if _, err := g.client.Get(ctx, constants.PathOrders, &page, httpclient.WithListParams(params)); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &page, nil
}

// GetOrder fetches an order with its items and payments
func (g *HTTPGateway) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if _, err := g.client.Get(ctx, fmt.Sprintf(constants.PathOrder, id), &order); err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &order, nil
}

// UpdateOrderStatus moves an order to a new status
func (g *HTTPGateway) UpdateOrderStatus(ctx context.Context, id int64, req *models.OrderStatusRequest) (*models.Order, error) {
	var order models.Order
	if _, err := g.client.Put(ctx, fmt.Sprintf(constants.PathOrderStatus, id), req, &order); err != nil {
		return nil, fmt.Errorf("failed to update order %d status: %w", id, err)
	}
	return &order, nil
}

// UploadShipmentProof attaches the delivery photo to an order
func (g *HTTPGateway) UploadShipmentProof(ctx context.Context, id int64, proof *models.FileUpload) (*models.Order, error) {
	form := httpclient.NewForm().AddFile("bukti_pengiriman", proof.Name, proof.Content)

	var order models.Order
	if _, err := g.client.PostForm(ctx, fmt.Sprintf(constants.PathOrderShipment, id), form, &order); err != nil {
		return nil, fmt.Errorf("failed to upload shipment proof for order %d: %w", id, err)
	}
	return &order, nil
}

// ListPayments fetches the payments recorded against an order
func (g *HTTPGateway) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	var payments []models.Payment
	if _, err := g.client.Get(ctx, fmt.Sprintf(constants.PathOrderPayments, orderID), &payments); err != nil {
		return nil, fmt.Errorf("failed to list payments for order %d: %w", orderID, err)
	}
	return payments, nil
}

// CreatePayment records a payment against an order
func (g *HTTPGateway) CreatePayment(ctx context.Context, orderID int64, req *models.PaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if _, err := g.client.Post(ctx, fmt.Sprintf(constants.PathOrderPayments, orderID), req, &payment); err != nil {
		return nil, fmt.Errorf("failed to create payment for order %d: %w", orderID, err)
	}
	return &payment, nil
}
