package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dmpt/absensi/internal/pkg/constants"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
)

// ListPayments returns the payments made against an order
func (u *SalesUC) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	if err := requireOrderID(orderID); err != nil {
		return nil, err
	}
	payments, err := u.salesGW.ListPayments(ctx, orderID)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}
	return payments, nil
}

// CreatePayment records a payment. An empty date means today.
func (u *SalesUC) CreatePayment(ctx context.Context, orderID int64, req *models.PaymentRequest) (*models.Payment, error) {
	if err := requireOrderID(orderID); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: payment is required", models.ErrInvalidInput)
	}

	payment := *req
	payment.Method = strings.ToLower(strings.TrimSpace(payment.Method))
	switch payment.Method {
	case constants.PaymentMethodCash, constants.PaymentMethodTransfer, constants.PaymentMethodGiro:
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", models.ErrInvalidInput, req.Method)
	}
	if math.IsNaN(payment.Amount) || math.IsInf(payment.Amount, 0) || payment.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", models.ErrInvalidInput)
	}
	if payment.Date == "" {
		payment.Date = models.FormatDate(u.now())
	} else if _, err := models.ParseDate(payment.Date); err != nil {
		return nil, fmt.Errorf("%w: payment date must look like %s", models.ErrInvalidInput, models.DateLayout)
	}

	created, err := u.salesGW.CreatePayment(ctx, orderID, &payment)
	if err != nil {
		return nil, httpclient.WrapNotFound(err)
	}

	logger.Info("Payment recorded",
		logger.Int64("order_id", orderID),
		logger.String("method", payment.Method),
		logger.Float64("amount", payment.Amount))
	return created, nil
}
