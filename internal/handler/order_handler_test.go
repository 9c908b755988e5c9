package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-furniture-resale/internal/model"
	"go-furniture-resale/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	lastPlaced *service.PlaceOrderRequest
	placeErr   error
	statusErr  error
}

func (f *fakeOrderService) PlaceOrder(req *service.PlaceOrderRequest) (*model.Order, error) {
	f.lastPlaced = req
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return &model.Order{
		ID:         42,
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		OrderDate:  time.Now(),
		Status:     model.StatusPending,
	}, nil
}

func (f *fakeOrderService) UpdateStatus(id uint, status string) (*model.Order, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &model.Order{ID: id, Status: model.OrderStatus(status)}, nil
}

func (f *fakeOrderService) GetAllOrders() ([]model.Order, error) {
	return []model.Order{{ID: 1}}, nil
}

func (f *fakeOrderService) GetOrderByID(id uint) (*model.Order, error) {
	return &model.Order{ID: id}, nil
}

func (f *fakeOrderService) GetOrdersByCustomer(customerID uint) ([]model.Order, error) {
	return nil, nil
}

func orderApp(svc service.OrderService) *fiber.App {
	app := fiber.New()
	h := NewOrderHandler(svc)
	app.Post("/api/transactions", h.CreateOrder)
	app.Put("/api/transactions/:id/status", h.UpdateStatus)
	app.Get("/api/transactions/:id", h.GetOrder)
	app.Get("/api/transactions", h.GetOrders)
	return app
}

func TestCreateOrderAcceptsPascalCaseBody(t *testing.T) {
	svc := &fakeOrderService{}
	app := orderApp(svc)

	body := `{
		"CustomerId": 1,
		"EmployeeId": 2,
		"PaymentMethod": "cash",
		"TotalAmount": 60.00,
		"Details": [{"FurnitureId": 5, "Quantity": 3, "SalePrice": 20.00}]
	}`
	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	require.NotNil(t, svc.lastPlaced)
	assert.Equal(t, uint(1), svc.lastPlaced.CustomerID)
	assert.Equal(t, uint(2), svc.lastPlaced.EmployeeID)
	assert.Equal(t, "cash", svc.lastPlaced.PaymentMethod)
	require.Len(t, svc.lastPlaced.Lines, 1)
	assert.Equal(t, uint(5), svc.lastPlaced.Lines[0].FurnitureID)
	assert.Equal(t, 3, svc.lastPlaced.Lines[0].Quantity)
	assert.Equal(t, "20", svc.lastPlaced.Lines[0].SalePrice.String())
}

func TestCreateOrderValidationFailureIs400(t *testing.T) {
	svc := &fakeOrderService{placeErr: service.ErrFurnitureNotFound}
	app := orderApp(svc)

	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{"customer_id":1,"employee_id":2,"details":[{"furniture_id":999,"quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateOrderMalformedJSON(t *testing.T) {
	app := orderApp(&fakeOrderService{})

	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := &fakeOrderService{statusErr: service.ErrInvalidStatus}
	app := orderApp(svc)

	req := httptest.NewRequest("PUT", "/api/transactions/7/status", strings.NewReader(`{"Status":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateStatusUnknownOrderIs404(t *testing.T) {
	svc := &fakeOrderService{statusErr: service.ErrOrderNotFound}
	app := orderApp(svc)

	req := httptest.NewRequest("PUT", "/api/transactions/999/status", strings.NewReader(`{"status":"Completed"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetOrdersEnvelope(t *testing.T) {
	app := orderApp(&fakeOrderService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/transactions", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "transactions")
}
