package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

// ConvertRequest is the body of POST /fx/convert.
type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	From   string  `json:"from" validate:"len=3,alpha"`
	To     string  `json:"to" validate:"len=3,alpha"`
}

func (c *ConvertRequest) Bind(r *http.Request) error {
	c.From = strings.ToUpper(strings.TrimSpace(c.From))
	c.To = strings.ToUpper(strings.TrimSpace(c.To))
	if c.From == "" {
		c.From = DefaultCurrency
	}
	if c.To == "" {
		c.To = DefaultCurrency
	}

	if err := ValidateSingleError(c); err != nil {
		return fmt.Errorf("error validate request: %w", exception.BadRequest(err.Error()))
	}

	return nil
}

type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}
