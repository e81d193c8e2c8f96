//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"kartly-api/internal/domain/user"
	"kartly-api/internal/handler/dto/request"
	"kartly-api/internal/handler/dto/response"
	"kartly-api/internal/usecase/queries"
	"kartly-api/tests/common/builder"
	"kartly-api/tests/common/dbtest"
	"kartly-api/tests/common/httptest"
	"kartly-api/tests/e2e"
	jwtHelper "kartly-api/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL   = "/api/orders"
	pointsMeURL = "/api/points/me"
)

type orderSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *orderSuite) userIDByEmail(email string) uuid.UUID {
	var id uuid.UUID
	err := s.DB.QueryRow(context.Background(), "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	require.NoError(s.T(), err)
	return id
}

func (s *orderSuite) TestSubmitOrder() {
	s.Run("カート2点の注文でポイントが付与されること", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "buyer@example.com", string(user.RoleCustomer))

		reqBody := builder.NewOrderBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)

		var resp response.SubmitOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.True(t, resp.Success)
		require.Equal(t, int64(4998), resp.TotalAmount)
		require.Equal(t, int64(245), resp.PointsEarned)
		require.Equal(t, int64(0), resp.PointsRedeemed)

		userID := s.userIDByEmail("buyer@example.com")
		ctx := context.Background()

		var status string
		var totalAmount int64
		err := s.DB.QueryRow(ctx, "SELECT status, total_amount FROM orders WHERE id = $1", resp.OrderID).Scan(&status, &totalAmount)
		require.NoError(t, err)
		require.Equal(t, "Pending Verification", status)
		require.Equal(t, int64(4998), totalAmount)

		var earnedCount, redeemedCount int
		err = s.DB.QueryRow(ctx, "SELECT count(*) FROM points_transactions WHERE user_id = $1 AND transaction_type = 'earned'", userID).Scan(&earnedCount)
		require.NoError(t, err)
		require.Equal(t, 1, earnedCount)
		err = s.DB.QueryRow(ctx, "SELECT count(*) FROM points_transactions WHERE user_id = $1 AND transaction_type = 'redeemed'", userID).Scan(&redeemedCount)
		require.NoError(t, err)
		require.Equal(t, 0, redeemedCount)

		var balance int64
		err = s.DB.QueryRow(ctx, "SELECT total_points FROM user_points WHERE user_id = $1", userID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, int64(245), balance)
	})

	s.Run("ポイント利用で合計金額が割引されること", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "redeemer@example.com", string(user.RoleCustomer))
		userID := s.userIDByEmail("redeemer@example.com")
		dbtest.SeedPointsBalance(t, s.DB, userID, 500)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.PointsToRedeem = 200
		}).BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)

		// 200ポイント = ₹20割引、獲得ポイントは割引後の金額から計算される
		var resp response.SubmitOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, int64(4978), resp.TotalAmount)
		require.Equal(t, int64(245), resp.PointsEarned)
		require.Equal(t, int64(200), resp.PointsRedeemed)

		var balance int64
		err := s.DB.QueryRow(context.Background(), "SELECT total_points FROM user_points WHERE user_id = $1", userID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, int64(545), balance)

		var redeemedChange int64
		err = s.DB.QueryRow(context.Background(), "SELECT points_change FROM points_transactions WHERE user_id = $1 AND transaction_type = 'redeemed'", userID).Scan(&redeemedChange)
		require.NoError(t, err)
		require.Equal(t, int64(-200), redeemedChange)
	})

	s.Run("未認証のリクエストは拒否されること", func() {
		t := s.T()
		reqBody := builder.NewOrderBuilder().BuildSubmitRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("存在しない商品は拒否されること", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "ghost@example.com", string(user.RoleCustomer))

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Products = []request.OrderProductRequest{{ID: "no-such-product", Quantity: 1}}
		}).BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid product data")
	})

	s.Run("残高不足の利用は注文ごと拒否されること", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "broke@example.com", string(user.RoleCustomer))
		userID := s.userIDByEmail("broke@example.com")
		dbtest.SeedPointsBalance(t, s.DB, userID, 50)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.PointsToRedeem = 100
		}).BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Insufficient points available")

		// 注文もポイント明細も作られないこと
		var orderCount int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM orders WHERE user_id = $1", userID).Scan(&orderCount)
		require.NoError(t, err)
		require.Equal(t, 0, orderCount)
	})

	s.Run("残高照会がティアを返すこと", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "tiered@example.com", string(user.RoleCustomer))
		userID := s.userIDByEmail("tiered@example.com")
		dbtest.SeedPointsBalance(t, s.DB, userID, 750)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pointsMeURL, nil, token)

		var view queries.PointsView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, int64(750), view.TotalPoints)
		require.Equal(t, "Silver", string(view.Tier))
		require.NotNil(t, view.NextTierThreshold)
		require.Equal(t, int64(1000), *view.NextTierThreshold)
	})
}

// 同時リダンプションは片方だけが成功すること。残高100に対して
// 100ポイント利用の注文を2本同時に投げ、プレビュー時残高との
// compare-and-setが二重引き落としを防ぐことを確認する。
// 勝者の決済後の残高は 100 - 100 + 60 = 60 < 100 なので、
// 直列化された場合でも敗者はプレビューの残高不足で落ちる。
func (s *orderSuite) TestConcurrentRedemption() {
	s.Run("同時利用の競合", func() {
		t := s.T()
		token := s.jwtHelper.CreateAndLogin(t, s.Router, "racer@example.com", string(user.RoleCustomer))
		userID := s.userIDByEmail("racer@example.com")
		dbtest.SeedPointsBalance(t, s.DB, userID, 100)

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Products = []request.OrderProductRequest{{ID: "cozycup-classic", Quantity: 1}}
			b.PointsToRedeem = 100
		}).BuildSubmitRequestDTO()

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i := range codes {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
				codes[idx] = w.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			if code == http.StatusOK {
				succeeded++
			} else {
				require.Equal(t, http.StatusBadRequest, code)
			}
		}
		require.Equal(t, 1, succeeded, "exactly one of the concurrent redemptions must win")

		ctx := context.Background()

		var orderCount, redeemedCount int
		err := s.DB.QueryRow(ctx, "SELECT count(*) FROM orders WHERE user_id = $1", userID).Scan(&orderCount)
		require.NoError(t, err)
		require.Equal(t, 1, orderCount)
		err = s.DB.QueryRow(ctx, "SELECT count(*) FROM points_transactions WHERE user_id = $1 AND transaction_type = 'redeemed'", userID).Scan(&redeemedCount)
		require.NoError(t, err)
		require.Equal(t, 1, redeemedCount)

		// 勝った注文: 1299 - 10 = 1289、獲得 1289/100*5 = 60
		var balance int64
		err = s.DB.QueryRow(ctx, "SELECT total_points FROM user_points WHERE user_id = $1", userID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, int64(60), balance)
	})
}
