package mockapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmpt/absensi/internal/mockapi"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/pkg/notify"
	"github.com/dmpt/absensi/internal/pkg/session"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/dmpt/absensi/services/attendance"
	attendancegw "github.com/dmpt/absensi/services/attendance/gateway/http"
	attendanceuc "github.com/dmpt/absensi/services/attendance/usecase"
	"github.com/dmpt/absensi/services/auth"
	authgw "github.com/dmpt/absensi/services/auth/gateway/http"
	authuc "github.com/dmpt/absensi/services/auth/usecase"
	cataloggw "github.com/dmpt/absensi/services/catalog/gateway/http"
	cataloguc "github.com/dmpt/absensi/services/catalog/usecase"
	salesgw "github.com/dmpt/absensi/services/sales/gateway/http"
	salesuc "github.com/dmpt/absensi/services/sales/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stack wires the real client and usecases to a mock backend, the way cmd/admin does
type stack struct {
	server     *httptest.Server
	session    *session.Session
	store      *session.MemoryStore
	recorder   *notify.Recorder
	client     *httpclient.Client
	auth       *authuc.AuthUC
	attendance *attendanceuc.AttendanceUC
	catalog    *cataloguc.CatalogUC
	sales      *salesuc.SalesUC
}

func newStack(t *testing.T) *stack {
	t.Helper()

	cfg := &models.Config{
		JWT:     models.JWTConfig{Secret: "e2e-secret", Expiration: 60, Issuer: "e2e"},
		MockAPI: models.MockAPIConfig{SeedUsername: "admin", SeedPassword: "password"},
	}
	backend, err := mockapi.New(cfg, logger.NewNop(), nil)
	require.NoError(t, err)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	store := session.NewMemoryStore("")
	sess := session.New(store)
	require.NoError(t, sess.Restore(context.Background()))

	recorder := notify.NewRecorder()
	client := httpclient.NewClientFromConfig(models.APIConfig{
		BaseURL:  server.URL,
		AssetURL: server.URL + "/storage",
		Timeout:  5,
	}, sess, recorder)

	return &stack{
		server:     server,
		session:    sess,
		store:      store,
		recorder:   recorder,
		client:     client,
		auth:       authuc.NewAuthUC(authgw.NewHTTPGateway(client), sess),
		attendance: attendanceuc.NewAttendanceUC(attendancegw.NewHTTPGateway(client), utils.DefaultGeofence),
		catalog:    cataloguc.NewCatalogUC(cataloggw.NewHTTPGateway(client)),
		sales:      salesuc.NewSalesUC(salesgw.NewHTTPGateway(client)),
	}
}

func (s *stack) login(t *testing.T) {
	t.Helper()
	_, err := s.auth.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "password"})
	require.NoError(t, err)
	s.recorder.Reset()
}

func TestEndToEnd_Auth(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	_, err := s.auth.Login(ctx, &models.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.False(t, s.session.IsAuthenticated())
	assert.Equal(t, []string{"Username atau password salah"}, s.recorder.Errors())

	user, err := s.auth.Login(ctx, &models.LoginRequest{Username: "admin", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "Administrator", user.Name)
	assert.True(t, s.session.IsAuthenticated())

	stored, err := s.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.session.Token(), stored)

	current, err := s.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, mockapi.SeedUserID, current.ID)

	require.NoError(t, s.auth.Logout(ctx))
	assert.False(t, s.session.IsAuthenticated())

	_, err = s.auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestEndToEnd_RevokedTokenExpiresSession(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.login(t)

	token := s.session.Token()
	require.NoError(t, s.auth.Logout(ctx))

	// put the revoked token back, as a second process sharing the file store would still have it
	require.NoError(t, s.session.SetToken(ctx, token))

	expired := 0
	s.session.OnExpired(func() { expired++ })

	_, err := s.auth.CurrentUser(ctx)
	assert.ErrorIs(t, err, httpclient.ErrUnauthorized)
	assert.False(t, s.session.IsAuthenticated())
	assert.Equal(t, 1, expired)
	assert.Equal(t, []string{notify.MsgSessionExpired}, s.recorder.Errors())
}

func TestEndToEnd_Attendance(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.login(t)

	office := models.OfficeLocation

	_, err := s.attendance.CheckIn(ctx, models.Coordinate{Latitude: office.Latitude + 0.01, Longitude: office.Longitude})
	assert.ErrorIs(t, err, attendance.ErrOutsideOffice)
	assert.Empty(t, s.recorder.Errors(), "the geofence rejects before any request")

	record, err := s.attendance.CheckIn(ctx, office)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInsideOffice, record.Status)
	assert.Equal(t, utils.EncodeLocation(office, utils.DefaultGeohashPrecision), record.Geohash)

	_, err = s.attendance.CheckIn(ctx, office)
	assert.Equal(t, http.StatusUnprocessableEntity, httpclient.StatusCode(err))
	assert.Equal(t, []string{"Anda sudah absen masuk hari ini"}, s.recorder.Errors())

	_, err = s.attendance.CheckOut(ctx, office)
	require.NoError(t, err)

	history, err := s.attendance.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history.Data, 2)
	assert.Equal(t, models.AttendanceCheckOut, history.Data[0].Type)
	assert.Equal(t, 1, history.Meta.CurrentPage)
}

func TestEndToEnd_Catalog(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.login(t)

	categories, err := s.catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	brand, err := s.catalog.CreateBrand(ctx, &models.BrandRequest{Name: "Yamalube"})
	require.NoError(t, err)
	assert.Equal(t, "yamalube", brand.Slug)

	product, err := s.catalog.CreateProduct(ctx, &models.ProductInput{
		Name:       "Oli Yamalube Super",
		CategoryID: categories[0].ID,
		BrandID:    brand.ID,
		IsPublish:  true,
		Image:      &models.FileUpload{Name: "yamalube.png", Content: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	require.NotNil(t, product.File)
	assert.Equal(t, 1, product.IsPublish)

	resp, err := http.Get(s.client.AssetURL(*product.File))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", string(body))

	page, err := s.catalog.ListProducts(ctx, models.ListParams{Search: "yamalube"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, product.ID, page.Data[0].ID)

	updated, err := s.catalog.UpdateProduct(ctx, product.ID, &models.ProductInput{
		Name:       "Oli Yamalube Sport",
		CategoryID: categories[0].ID,
		BrandID:    brand.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "oli-yamalube-sport", updated.Slug)
	assert.Equal(t, product.File, updated.File, "the image is kept when none is uploaded")
	assert.Equal(t, 0, updated.IsPublish)

	err = s.catalog.DeleteBrand(ctx, brand.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, httpclient.StatusCode(err))

	require.NoError(t, s.catalog.DeleteProduct(ctx, product.ID))
	require.NoError(t, s.catalog.DeleteBrand(ctx, brand.ID))

	_, err = s.catalog.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEndToEnd_Sales(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	s.login(t)

	pending, err := s.sales.ListOrders(ctx, models.ListParams{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending.Data, 1)
	orderID := pending.Data[0].ID

	order, err := s.sales.UpdateOrderStatus(ctx, orderID, "shipped")
	require.NoError(t, err)
	assert.NotNil(t, order.ShippedAt)

	order, err = s.sales.UploadShipmentProof(ctx, orderID, &models.FileUpload{Name: "resi.pdf", Content: strings.NewReader("%PDF")})
	require.NoError(t, err)
	require.NotNil(t, order.ShipmentProof)
	assert.True(t, strings.HasPrefix(*order.ShipmentProof, "orders/"))

	payment, err := s.sales.CreatePayment(ctx, orderID, &models.PaymentRequest{Method: "Cash", Amount: 66000})
	require.NoError(t, err)
	assert.Equal(t, "cash", payment.Method)
	assert.Equal(t, "700000", payment.Remaining)
	assert.Equal(t, "Administrator", payment.Admin)

	_, err = s.sales.CreatePayment(ctx, orderID, &models.PaymentRequest{Method: "transfer", Amount: 1000000})
	assert.Equal(t, http.StatusUnprocessableEntity, httpclient.StatusCode(err))
	assert.Equal(t, "Jumlah pembayaran melebihi sisa tagihan", s.recorder.Errors()[0])

	payments, err := s.sales.ListPayments(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = s.sales.GetOrder(ctx, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
