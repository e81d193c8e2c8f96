package order

import "errors"

var (
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// Status is mutated only by back-office review, never by the settlement flow.
type Status string

const (
	StatusPendingVerification Status = "Pending Verification"
	StatusVerified            Status = "Verified"
	StatusShipped             Status = "Shipped"
	StatusCompleted           Status = "Completed"
	StatusRejected            Status = "Rejected"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPendingVerification, StatusVerified, StatusShipped, StatusCompleted, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }

// IsTerminal reports whether review is finished for the order.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

var transitions = map[Status][]Status{
	StatusPendingVerification: {StatusVerified, StatusRejected},
	StatusVerified:            {StatusShipped, StatusRejected},
	StatusShipped:             {StatusCompleted, StatusRejected},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates a back-office status change.
func (s Status) Transition(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return "", ErrInvalidStatusTransition
	}
	return next, nil
}
