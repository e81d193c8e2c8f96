//go:build unit

package order_test

import (
	"testing"

	"kartly-api/internal/domain/catalog"
	"kartly-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValues(t *testing.T) (order.CustomerName, order.Email, order.Phone, order.Address) {
	t.Helper()
	name, err := order.NewCustomerName("Priya Sharma")
	require.NoError(t, err)
	email, err := order.NewEmail("priya@example.com")
	require.NoError(t, err)
	phone, err := order.NewPhone("9876543210")
	require.NoError(t, err)
	address, err := order.NewAddress("12 MG Road, Bengaluru")
	require.NoError(t, err)
	return name, email, phone, address
}

func TestNewOrder(t *testing.T) {
	name, email, phone, address := mustValues(t)
	lines := []catalog.ResolvedLine{
		{ProductID: "cozycup-premium", Name: "CozyCup Premium", UnitPrice: 2499, Quantity: 1},
	}

	t.Run("starts pending verification", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), name, email, phone, address, lines, 2499, order.PaymentEvidence{})
		require.NoError(t, err)
		assert.Equal(t, order.StatusPendingVerification, o.Status())
		assert.Equal(t, int64(2499), o.TotalAmount())
		assert.NotEqual(t, uuid.Nil, o.ID())
	})

	t.Run("negative total rejected", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), name, email, phone, address, lines, -1, order.PaymentEvidence{})
		require.ErrorIs(t, err, order.ErrNegativeTotal)
	})

	t.Run("zero total allowed", func(t *testing.T) {
		o, err := order.NewOrder(uuid.New(), name, email, phone, address, lines, 0, order.PaymentEvidence{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), o.TotalAmount())
	})

	t.Run("blank transaction id stored as nil", func(t *testing.T) {
		blank := "   "
		o, err := order.NewOrder(uuid.New(), name, email, phone, address, lines, 2499, order.PaymentEvidence{
			TransactionID: &blank,
		})
		require.NoError(t, err)
		assert.Nil(t, o.TransactionID())
	})

	t.Run("transaction id trimmed", func(t *testing.T) {
		txn := "  UPI-12345  "
		o, err := order.NewOrder(uuid.New(), name, email, phone, address, lines, 2499, order.PaymentEvidence{
			TransactionID: &txn,
		})
		require.NoError(t, err)
		require.NotNil(t, o.TransactionID())
		assert.Equal(t, "UPI-12345", *o.TransactionID())
	})
}
