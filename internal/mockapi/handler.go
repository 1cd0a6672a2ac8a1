package mockapi

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/metrics"
	"github.com/dmpt/absensi/internal/pkg/middleware"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
	maxPage        = math.MaxInt32
	maxUploadBytes = 5 << 20
)

// Handler serves the backend REST API from a Store
type Handler struct {
	store    *Store
	jwt      models.JWTConfig
	geofence utils.Geofence
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewHandler creates a new mock backend handler
func NewHandler(store *Store, jwt models.JWTConfig, geofence utils.Geofence) *Handler {
	return &Handler{
		store:    store,
		jwt:      jwt,
		geofence: geofence,
		now:      models.Now,
	}
}

// RegisterRoutes registers the backend API routes under /api.
// Every route except login needs a bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo, loginLimiter echo.MiddlewareFunc) {
	api := e.Group("/api")

	login := []echo.MiddlewareFunc{}
	if loginLimiter != nil {
		login = append(login, loginLimiter)
	}
	api.POST(constants.PathLogin, h.Login, login...)

	protected := api.Group("", middleware.JWTAuthMiddleware(h.jwt, h.store))

	// Auth
	protected.POST(constants.PathLogout, h.Logout)
	protected.GET(constants.PathUser, h.CurrentUser)

	// Attendance
	protected.POST(constants.PathAttendances, h.RecordAttendance)
	protected.GET(constants.PathAttendances, h.AttendanceHistory)

	// Catalog
	protected.GET(constants.PathProducts, h.ListProducts)
	protected.POST(constants.PathProducts, h.CreateProduct)
	protected.GET("/products/:id", h.GetProduct)
	protected.PUT("/products/:id", h.UpdateProduct)
	protected.DELETE("/products/:id", h.DeleteProduct)
	protected.GET(constants.PathBrands, h.ListBrands)
	protected.POST(constants.PathBrands, h.CreateBrand)
	protected.PUT("/brands/:id", h.UpdateBrand)
	protected.DELETE("/brands/:id", h.DeleteBrand)
	protected.GET(constants.PathCategories, h.ListCategories)
	protected.POST(constants.PathCategories, h.CreateCategory)
	protected.PUT("/categories/:id", h.UpdateCategory)
	protected.DELETE("/categories/:id", h.DeleteCategory)

	// Sales
	protected.GET(constants.PathOrders, h.ListOrders)
	protected.GET("/orders/:id", h.GetOrder)
	protected.PUT("/orders/:id/status", h.UpdateOrderStatus)
	protected.POST("/orders/:id/shipment", h.UploadShipmentProof)
	protected.GET("/orders/:id/payments", h.ListPayments)
	protected.POST("/orders/:id/payments", h.CreatePayment)

	// Uploaded files, public like the backend's storage link
	e.GET("/storage/*", h.ServeAsset)
}

// currentUser loads the user authenticated by JWTAuthMiddleware
func (h *Handler) currentUser(c echo.Context) (models.User, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		return models.User{}, false
	}
	return h.store.User(id)
}

func pageParams(c echo.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.QueryParam(constants.QueryPage))
	perPage, _ = strconv.Atoi(c.QueryParam(constants.QueryPerPage))

	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// paginate slices items the way the backend paginator does. Pages past the end are empty.
func paginate[T any](items []T, page, perPage int) ([]T, models.PageMeta) {
	total := len(items)
	meta := models.PageMeta{
		CurrentPage: page,
		Total:       total,
		PerPage:     perPage,
		LastPage:    max(1, (total+perPage-1)/perPage),
	}

	if page < 1 || page > meta.LastPage {
		return []T{}, meta
	}
	start := (page - 1) * perPage
	if start >= total {
		return []T{}, meta
	}
	end := min(start+perPage, total)
	meta.From = start + 1
	return items[start:end], meta
}

// apiError is a request failure answered with its status and message
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func unprocessable(message string) error {
	return &apiError{status: http.StatusUnprocessableEntity, message: message}
}

var errInvalidPayload = &apiError{status: http.StatusBadRequest, message: "Invalid request payload"}

// respondError answers an apiError with its own status, anything else with 500
func respondError(c echo.Context, err error) error {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return utils.ErrorResponseHandler(c, apiErr.status, apiErr.message)
	}
	logger.Error("Request failed", logger.String("path", c.Path()), logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}

func notFound(c echo.Context, what string) error {
	return utils.NotFoundResponse(c, what+" tidak ditemukan")
}

func invalidPayload(c echo.Context) error {
	return utils.BadRequestResponse(c, errInvalidPayload.message)
}

func respondOK(c echo.Context, message string, data interface{}) error {
	return utils.SuccessResponse(c, http.StatusOK, message, data)
}

func respondCreated(c echo.Context, message string, data interface{}) error {
	return utils.SuccessResponse(c, http.StatusCreated, message, data)
}
