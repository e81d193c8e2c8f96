package order

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCustomerName = errors.New("customer name must be between 2 and 100 characters")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPhone        = errors.New("phone number must be exactly 10 digits")
	ErrInvalidAddress      = errors.New("address must be between 10 and 500 characters")
	ErrNegativeTotal       = errors.New("order total cannot be negative")
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 100 {
		return CustomerName{}, ErrInvalidCustomerName
	}
	return CustomerName{value: s}, nil
}

func (n CustomerName) Value() string { return n.value }

type Email struct {
	value string
}

// NewEmail normalizes the address to lower case before storing.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string { return e.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if len(s) < 10 || len(s) > 500 {
		return Address{}, ErrInvalidAddress
	}
	return Address{value: s}, nil
}

func (a Address) Value() string { return a.value }
