//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"kartly-api/internal/domain/loyalty"
	"kartly-api/internal/domain/order"
	"kartly-api/internal/domain/user"
	"kartly-api/internal/handler/api"
	resdto "kartly-api/internal/handler/dto/response"
	"kartly-api/internal/pkg/errs"
	"kartly-api/internal/usecase/commands"
	"kartly-api/internal/usecase/queries"
	"kartly-api/tests/common/builder"
	"kartly-api/tests/common/httptest"
	commandsmock "kartly-api/tests/mock/commands"
	queriesmock "kartly-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/api/orders", authMiddleware, s.handler.SubmitOrder)
	s.router.GET("/api/orders", authMiddleware, s.handler.GetUserOrders)
	s.router.GET("/api/orders/:id", authMiddleware, s.handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// SubmitOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestSubmitOrderSuccess() {
	reqBody := builder.NewOrderBuilder().BuildSubmitRequestDTO()
	result := &commands.SubmitOrderResult{
		OrderID:        uuid.New(),
		TotalAmount:    4998,
		PointsEarned:   245,
		PointsRedeemed: 0,
	}

	s.mockCommands.EXPECT().
		SubmitOrder(gomock.Any(), gomock.Any()).
		Return(result, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", reqBody, "token")

	var resp resdto.SubmitOrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.True(resp.Success)
	s.Equal(result.OrderID, resp.OrderID)
	s.Equal(int64(4998), resp.TotalAmount)
	s.Equal(int64(245), resp.PointsEarned)
	s.Equal(int64(0), resp.PointsRedeemed)
}

func (s *OrderHandlerTestSuite) TestSubmitOrderBindsPaymentEvidenceFields() {
	// Raw body pins the wire field names the storefront client sends.
	reqBody := map[string]any{
		"customer_name":   "Priya Sharma",
		"email":           "priya@example.com",
		"phone":           "9876543210",
		"address":         "12 MG Road, Bengaluru",
		"products":        []map[string]any{{"id": "cozycup-premium", "quantity": 2}},
		"screenshot_path": "receipts/upi-1234.png",
		"transaction_id":  "UPI-1234",
	}

	var captured commands.SubmitOrderParams
	s.mockCommands.EXPECT().
		SubmitOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params commands.SubmitOrderParams) (*commands.SubmitOrderResult, error) {
			captured = params
			return &commands.SubmitOrderResult{OrderID: uuid.New(), TotalAmount: 4998, PointsEarned: 245}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", reqBody, "token")

	s.Equal(http.StatusOK, w.Code)
	s.Require().NotNil(captured.ScreenshotPath)
	s.Equal("receipts/upi-1234.png", *captured.ScreenshotPath)
	s.Require().NotNil(captured.TransactionID)
	s.Equal("UPI-1234", *captured.TransactionID)
}

func (s *OrderHandlerTestSuite) TestSubmitOrderRequiresAuth() {
	reqBody := builder.NewOrderBuilder().BuildSubmitRequestDTO()

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", reqBody, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
}

func (s *OrderHandlerTestSuite) TestSubmitOrderMalformedBody() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", "not-an-object", "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *OrderHandlerTestSuite) TestSubmitOrderErrorMapping() {
	cases := []struct {
		name         string
		err          error
		expectCode   int
		expectInBody string
	}{
		{
			name:         "invalid customer name",
			err:          errs.Mark(order.ErrInvalidCustomerName, commands.ErrDomainValidation),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid customer name",
		},
		{
			name:         "invalid email",
			err:          errs.Mark(order.ErrInvalidEmail, commands.ErrDomainValidation),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid email address",
		},
		{
			name:         "invalid phone",
			err:          errs.Mark(order.ErrInvalidPhone, commands.ErrDomainValidation),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid phone number. Must be 10 digits.",
		},
		{
			name:         "invalid address",
			err:          errs.Mark(order.ErrInvalidAddress, commands.ErrDomainValidation),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid address. Must be between 10 and 500 characters.",
		},
		{
			name:         "unknown product",
			err:          commands.ErrProductNotFound,
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid product data",
		},
		{
			name:         "insufficient points",
			err:          loyalty.ErrInsufficientBalance,
			expectCode:   http.StatusBadRequest,
			expectInBody: "Insufficient points available",
		},
		{
			name:         "below minimum redemption",
			err:          loyalty.ErrBelowMinimumRedemption,
			expectCode:   http.StatusBadRequest,
			expectInBody: "Minimum 100 points required for redemption",
		},
		{
			name:         "persistence failure",
			err:          commands.ErrDatabaseOperationFailed,
			expectCode:   http.StatusInternalServerError,
			expectInBody: "Failed to create order",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			reqBody := builder.NewOrderBuilder().BuildSubmitRequestDTO()

			s.mockCommands.EXPECT().
				SubmitOrder(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", reqBody, "token")

			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}
}

// ================================================================================
// GetUserOrders / GetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetUserOrders() {
	items := []*queries.OrderListItem{
		builder.NewOrderBuilder().BuildListItem(),
		builder.NewOrderBuilder().BuildListItem(),
	}

	s.mockQueries.EXPECT().
		ListMyOrders(gomock.Any(), s.userID).
		Return(items, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders", nil, "token")

	var resp []*queries.OrderListItem
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 2)
}

func (s *OrderHandlerTestSuite) TestGetUserOrdersEmptyIsArray() {
	s.mockQueries.EXPECT().
		ListMyOrders(gomock.Any(), s.userID).
		Return(nil, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders", nil, "token")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())
}

func (s *OrderHandlerTestSuite) TestGetOrderNotFound() {
	id := uuid.New()

	s.mockQueries.EXPECT().
		GetOrder(gomock.Any(), s.userID, id).
		Return(nil, queries.ErrOrderNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+id.String(), nil, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")
}

func (s *OrderHandlerTestSuite) TestGetOrderInvalidID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/not-a-uuid", nil, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid order ID format")
}

func (s *OrderHandlerTestSuite) TestGetOrderSuccess() {
	view := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.UserID = s.userID
	}).BuildView()

	s.mockQueries.EXPECT().
		GetOrder(gomock.Any(), s.userID, view.ID).
		Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+view.ID.String(), nil, "token")

	var resp queries.OrderView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(view.ID, resp.ID)
	s.Equal(view.TotalAmount, resp.TotalAmount)
	s.Len(resp.Lines, len(view.Lines))
}
