//go:build e2e

package admin_test

import (
	"context"
	"net/http"
	"testing"

	"kartly-api/internal/domain/user"
	"kartly-api/internal/handler/dto/request"
	"kartly-api/internal/handler/dto/response"
	"kartly-api/internal/usecase/queries"
	"kartly-api/tests/common/builder"
	"kartly-api/tests/common/httptest"
	"kartly-api/tests/e2e"
	jwtHelper "kartly-api/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminOrdersURL = "/api/admin/orders"
	ordersURL      = "/api/orders"
)

type adminSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

// 顧客として注文を1件作成し、そのIDを返す
func (s *adminSuite) submitOrderAsCustomer(email string) uuid.UUID {
	t := s.T()
	token := s.jwtHelper.CreateAndLogin(t, s.Router, email, string(user.RoleCustomer))

	reqBody := builder.NewOrderBuilder().BuildSubmitRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)

	var resp response.SubmitOrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	return resp.OrderID
}

func (s *adminSuite) TestUpdateOrderStatus() {
	s.Run("検証済みへの遷移が成功すること", func() {
		t := s.T()
		orderID := s.submitOrderAsCustomer("customer1@example.com")
		adminToken := s.jwtHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminOrdersURL+"/"+orderID.String()+"/status",
			request.UpdateOrderStatusRequest{Status: "Verified"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var status string
		err := s.DB.QueryRow(context.Background(), "SELECT status FROM orders WHERE id = $1", orderID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "Verified", status)
	})

	s.Run("段階を飛ばした遷移は拒否されること", func() {
		t := s.T()
		orderID := s.submitOrderAsCustomer("customer2@example.com")
		adminToken := s.jwtHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		// Pending Verification から Shipped へは直接進めない
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminOrdersURL+"/"+orderID.String()+"/status",
			request.UpdateOrderStatusRequest{Status: "Shipped"}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("非終端状態からの却下は常に許可されること", func() {
		t := s.T()
		orderID := s.submitOrderAsCustomer("customer3@example.com")
		adminToken := s.jwtHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminOrdersURL+"/"+orderID.String()+"/status",
			request.UpdateOrderStatusRequest{Status: "Rejected"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 終端状態からはもう動かせない
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminOrdersURL+"/"+orderID.String()+"/status",
			request.UpdateOrderStatusRequest{Status: "Verified"}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("顧客ロールではアクセスできないこと", func() {
		t := s.T()
		orderID := s.submitOrderAsCustomer("customer4@example.com")
		customerToken := s.jwtHelper.CreateAndLogin(t, s.Router, "plain@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminOrdersURL+"/"+orderID.String()+"/status",
			request.UpdateOrderStatusRequest{Status: "Verified"}, customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("存在しない注文は404になること", func() {
		t := s.T()
		adminToken := s.jwtHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminOrdersURL+"/"+uuid.New().String()+"/status",
			request.UpdateOrderStatusRequest{Status: "Verified"}, adminToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *adminSuite) TestListAllOrders() {
	s.Run("全ユーザーの注文を一覧できること", func() {
		t := s.T()
		s.submitOrderAsCustomer("lister1@example.com")
		s.submitOrderAsCustomer("lister2@example.com")
		adminToken := s.jwtHelper.CreateAndLogin(t, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, adminToken)

		var orders []*queries.OrderView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &orders)
		require.Len(t, orders, 2)
	})
}
