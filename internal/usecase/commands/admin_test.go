//go:build unit

package commands_test

import (
	"context"
	"testing"

	"kartly-api/internal/domain/order"
	"kartly-api/internal/infra"
	"kartly-api/internal/usecase/commands"
	commandsmock "kartly-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	reviewRepo *commandsmock.MockOrderReviewRepository
	commands   commands.AdminOrderCommands
	reviewer   uuid.UUID
	orderID    uuid.UUID
}

func (s *AdminCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reviewRepo = commandsmock.NewMockOrderReviewRepository(s.mockCtrl)
	s.commands = commands.NewAdminOrderCommands(s.reviewRepo)
	s.reviewer = uuid.New()
	s.orderID = uuid.New()
}

func (s *AdminCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminCommandsSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandsTestSuite))
}

func (s *AdminCommandsTestSuite) TestTransitionGuardedOnReadStatus() {
	s.reviewRepo.EXPECT().
		StatusByID(gomock.Any(), s.orderID).
		Return(order.StatusPendingVerification, nil)
	// The write carries the status the reviewer saw; the repository applies
	// it only while that status still holds.
	s.reviewRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.orderID, order.StatusPendingVerification, order.StatusVerified).
		Return(nil)

	err := s.commands.UpdateOrderStatus(context.Background(), s.reviewer, s.orderID, "Verified")
	s.Require().NoError(err)
}

func (s *AdminCommandsTestSuite) TestConcurrentReviewSurfacesTransitionError() {
	s.reviewRepo.EXPECT().
		StatusByID(gomock.Any(), s.orderID).
		Return(order.StatusPendingVerification, nil)
	s.reviewRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.orderID, order.StatusPendingVerification, order.StatusVerified).
		Return(infra.WrapRepoErr("order status changed during review", nil, infra.KindConflict))

	err := s.commands.UpdateOrderStatus(context.Background(), s.reviewer, s.orderID, "Verified")
	s.Require().ErrorIs(err, commands.ErrStatusTransition)
}

func (s *AdminCommandsTestSuite) TestInvalidTransitionRejectedWithoutWrite() {
	s.reviewRepo.EXPECT().
		StatusByID(gomock.Any(), s.orderID).
		Return(order.StatusPendingVerification, nil)

	// No UpdateStatus expectation: skipping a step never reaches the write.
	err := s.commands.UpdateOrderStatus(context.Background(), s.reviewer, s.orderID, "Shipped")
	s.Require().ErrorIs(err, commands.ErrStatusTransition)
}

func (s *AdminCommandsTestSuite) TestUnknownOrder() {
	s.reviewRepo.EXPECT().
		StatusByID(gomock.Any(), s.orderID).
		Return(order.Status(""), infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

	err := s.commands.UpdateOrderStatus(context.Background(), s.reviewer, s.orderID, "Verified")
	s.Require().ErrorIs(err, commands.ErrOrderNotFound)
}

func (s *AdminCommandsTestSuite) TestUnknownStatusRejected() {
	err := s.commands.UpdateOrderStatus(context.Background(), s.reviewer, s.orderID, "Misplaced")
	s.Require().ErrorIs(err, order.ErrInvalidStatus)
	s.Require().ErrorIs(err, commands.ErrDomainValidation)
}
