package mockapi

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var paymentMethods = []string{
	constants.PaymentMethodCash,
	constants.PaymentMethodTransfer,
	constants.PaymentMethodGiro,
}

// ListOrders returns one page of orders filtered by status and store name
func (h *Handler) ListOrders(c echo.Context) error {
	status := c.QueryParam(constants.QueryStatus)
	if status != "" && !slices.Contains(constants.OrderStatuses, status) {
		return utils.UnprocessableResponse(c, "Status order tidak valid")
	}

	page, perPage := pageParams(c)
	data, meta := paginate(h.store.Orders(status, c.QueryParam(constants.QuerySearch)), page, perPage)
	return respondOK(c, "Orders retrieved successfully", models.OrderPage{Data: data, Meta: meta})
}

// GetOrder returns an order with its items and payments
func (h *Handler) GetOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFound(c, "Order")
	}

	order, found := h.store.Order(id)
	if !found {
		return notFound(c, "Order")
	}
	return respondOK(c, "Order retrieved successfully", order)
}

// UpdateOrderStatus moves an order to a new status. Shipping stamps shipped_at.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFound(c, "Order")
	}

	var req models.OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if !slices.Contains(constants.OrderStatuses, req.Status) {
		return utils.UnprocessableResponse(c, "Status order tidak valid")
	}

	now := models.FormatTime(h.now())
	order, err := h.store.UpdateOrder(id, func(o *models.Order) error {
		if o.Status == constants.OrderStatusCancelled || o.Status == constants.OrderStatusCompleted {
			return unprocessable(fmt.Sprintf("Order sudah %s", o.Status))
		}
		o.Status = req.Status
		if req.Status == constants.OrderStatusShipped && o.ShippedAt == nil {
			o.ShippedAt = &now
		}
		o.UpdatedAt = now
		return nil
	})
	if errors.Is(err, errNotFound) {
		return notFound(c, "Order")
	}
	if err != nil {
		return respondError(c, err)
	}

	logger.Info("Order status updated", logger.Int64("order_id", id), logger.String("status", req.Status))
	return respondOK(c, "Status order berhasil diperbarui", order)
}

// UploadShipmentProof attaches the delivery photo to an order
func (h *Handler) UploadShipmentProof(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFound(c, "Order")
	}
	if _, found := h.store.Order(id); !found {
		return notFound(c, "Order")
	}

	proof, err := h.saveUpload(c, "bukti_pengiriman", fmt.Sprintf("orders/%d", id), proofExtensions)
	if err != nil {
		return respondError(c, err)
	}
	if proof == nil {
		return utils.UnprocessableResponse(c, "Bukti pengiriman wajib diunggah")
	}

	order, err := h.store.UpdateOrder(id, func(o *models.Order) error {
		o.ShipmentProof = proof
		o.UpdatedAt = models.FormatTime(h.now())
		return nil
	})
	if err != nil {
		return notFound(c, "Order")
	}
	return respondOK(c, "Bukti pengiriman berhasil diunggah", order)
}

// ListPayments returns the payments recorded against an order
func (h *Handler) ListPayments(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return notFound(c, "Order")
	}

	order, found := h.store.Order(id)
	if !found {
		return notFound(c, "Order")
	}
	return respondOK(c, "Payments retrieved successfully", order.Payments)
}

// CreatePayment records an installment. The amount may not exceed what is still owed.
func (h *Handler) CreatePayment(c echo.Context) error {
	user, found := h.currentUser(c)
	if !found {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := orderID(c)
	if err != nil {
		return notFound(c, "Order")
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if !slices.Contains(paymentMethods, strings.ToLower(req.Method)) {
		return utils.UnprocessableResponse(c, "Metode pembayaran tidak valid")
	}
	if req.Amount <= 0 {
		return utils.UnprocessableResponse(c, "Jumlah pembayaran harus lebih dari 0")
	}
	if _, err := models.ParseDate(req.Date); err != nil {
		return utils.UnprocessableResponse(c, "Tanggal pembayaran tidak valid")
	}

	var payment models.Payment
	_, err = h.store.UpdateOrder(id, func(o *models.Order) error {
		if req.Amount > o.Remaining {
			return unprocessable("Jumlah pembayaran melebihi sisa tagihan")
		}
		o.Paid += req.Amount
		o.Remaining -= req.Amount

		payment = models.Payment{
			ID:        uuid.NewString(),
			Method:    strings.ToLower(req.Method),
			Date:      req.Date,
			Amount:    formatAmount(req.Amount),
			Remaining: formatAmount(o.Remaining),
			Admin:     user.Name,
		}
		if o.Customer != nil {
			payment.Customer = o.Customer.StoreName
		}
		if o.Collector != nil {
			payment.Collector = o.Collector.Name
		}
		o.Payments = append(o.Payments, payment)
		o.UpdatedAt = models.FormatTime(h.now())
		return nil
	})
	if errors.Is(err, errNotFound) {
		return notFound(c, "Order")
	}
	if err != nil {
		return respondError(c, err)
	}

	logger.Info("Payment recorded", logger.Int64("order_id", id), logger.Float64("amount", req.Amount))
	return respondCreated(c, "Pembayaran berhasil dicatat", payment)
}

func orderID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// formatAmount renders rupiah amounts the way the backend serializes decimals
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
