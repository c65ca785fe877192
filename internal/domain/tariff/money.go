package tariff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMoney = errors.New("invalid money amount")

// Money is a currency amount held in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// String renders two decimals, e.g. 120.00.
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// ParseMoney accepts "120", "120.5" and "120.50".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidMoney
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return Money{}, ErrInvalidMoney
	}
	var f int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return Money{}, ErrInvalidMoney
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return Money{}, ErrInvalidMoney
		}
	}
	return Money{cents: w*100 + f}, nil
}
