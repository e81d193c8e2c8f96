package order

import (
	"strings"

	"kartly-api/internal/domain/catalog"

	"github.com/google/uuid"
)

// Order is the persisted settlement snapshot. Line items carry catalog
// prices as of submission; the total is immutable after creation.
type Order struct {
	id            uuid.UUID
	userID        uuid.UUID
	customerName  CustomerName
	email         Email
	phone         Phone
	address       Address
	lines         []catalog.ResolvedLine
	totalAmount   int64
	screenshotURL *string
	transactionID *string
	status        Status
}

// PaymentEvidence is the claimed proof of payment recorded for manual
// verification; neither field is validated beyond trimming.
type PaymentEvidence struct {
	ScreenshotPath *string
	TransactionID  *string
}

func NewOrder(
	userID uuid.UUID,
	name CustomerName,
	email Email,
	phone Phone,
	address Address,
	lines []catalog.ResolvedLine,
	totalAmount int64,
	evidence PaymentEvidence,
) (*Order, error) {
	if totalAmount < 0 {
		return nil, ErrNegativeTotal
	}

	return &Order{
		id:            uuid.New(),
		userID:        userID,
		customerName:  name,
		email:         email,
		phone:         phone,
		address:       address,
		lines:         lines,
		totalAmount:   totalAmount,
		screenshotURL: evidence.ScreenshotPath,
		transactionID: trimPtr(evidence.TransactionID),
		status:        StatusPendingVerification,
	}, nil
}

func (o *Order) ID() uuid.UUID                      { return o.id }
func (o *Order) UserID() uuid.UUID                  { return o.userID }
func (o *Order) CustomerName() CustomerName         { return o.customerName }
func (o *Order) Email() Email                       { return o.email }
func (o *Order) Phone() Phone                       { return o.phone }
func (o *Order) Address() Address                   { return o.address }
func (o *Order) Lines() []catalog.ResolvedLine      { return o.lines }
func (o *Order) TotalAmount() int64                 { return o.totalAmount }
func (o *Order) ScreenshotURL() *string             { return o.screenshotURL }
func (o *Order) TransactionID() *string             { return o.transactionID }
func (o *Order) Status() Status                     { return o.status }

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
