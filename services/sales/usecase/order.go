package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmpt/absensi/internal/pkg/constants"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
)

var proofExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".pdf"}

// ListOrders returns a page of orders, optionally filtered by status
func (u *SalesUC) ListOrders(ctx context.Context, params models.ListParams) (*models.OrderPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	params.Status = normalizeStatus(params.Status)
	if params.Status != "" {
		if err := validateStatus(params.Status); err != nil {
			return nil, err
		}
	}
	return u.salesGW.ListOrders(ctx, params)
}

// GetOrder returns a single order
func (u *SalesUC) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	if err := requireOrderID(id); err != nil {
		return nil, err
	}
	order, err := u.salesGW.GetOrder(ctx, id)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}
	return order, nil
}

// UpdateOrderStatus moves an order to status
func (u *SalesUC) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	if err := requireOrderID(id); err != nil {
		return nil, err
	}
	status = normalizeStatus(status)
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	order, err := u.salesGW.UpdateOrderStatus(ctx, id, &models.OrderStatusRequest{Status: status})
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}

	logger.Info("Order status updated",
		logger.Int64("order_id", id),
		logger.String("status", status))
	return order, nil
}

// UploadShipmentProof attaches the proof of delivery to an order
func (u *SalesUC) UploadShipmentProof(ctx context.Context, id int64, proof *models.FileUpload) (*models.Order, error) {
	if err := requireOrderID(id); err != nil {
		return nil, err
	}
	if proof == nil || proof.Content == nil {
		return nil, fmt.Errorf("%w: shipment proof file is required", models.ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(proof.Name))
	if !slices.Contains(proofExtensions, ext) {
		return nil, fmt.Errorf("%w: unsupported shipment proof type %q", models.ErrInvalidInput, ext)
	}

	order, err := u.salesGW.UploadShipmentProof(ctx, id, proof)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}

	logger.Info("Shipment proof uploaded",
		logger.Int64("order_id", id),
		logger.String("file", proof.Name))
	return order, nil
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func validateStatus(status string) error {
	if !slices.Contains(constants.OrderStatuses, status) {
		return fmt.Errorf("%w: unknown order status %q, expected one of %s",
			models.ErrInvalidInput, status, strings.Join(constants.OrderStatuses, ", "))
	}
	return nil
}

func requireOrderID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: order id must be positive", models.ErrInvalidInput)
	}
	return nil
}
