package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/exception"
)

var ErrInvalidAmount = exception.BadRequest("budget must be a number")

// OptionalAmount is a money amount that may be missing from the request.
// null and "" decode as absent, numeric strings are accepted.
type OptionalAmount struct {
	Value float64
	Valid bool
}

func NewAmount(v float64) OptionalAmount {
	return OptionalAmount{Value: v, Valid: true}
}

// Ptr returns nil when the amount is absent.
func (a OptionalAmount) Ptr() *float64 {
	if !a.Valid {
		return nil
	}

	v := a.Value
	return &v
}

func (a *OptionalAmount) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return ErrInvalidAmount
	}

	if text == "" {
		*a = OptionalAmount{}
		return nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidAmount
	}

	*a = NewAmount(v)
	return nil
}

func (a OptionalAmount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(a.Value)
}

// amountValue lets validation tags apply to the wrapped number.
func amountValue(v reflect.Value) interface{} {
	a, ok := v.Interface().(OptionalAmount)
	if !ok || !a.Valid {
		return nil
	}

	return a.Value
}

// scalarText returns the trimmed text of a JSON number or string.
// null yields "".
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}

		return strings.TrimSpace(s), nil
	}

	if len(data) == 0 || data[0] == '{' || data[0] == '[' || data[0] == 't' || data[0] == 'f' {
		return "", &json.UnsupportedValueError{Str: string(data)}
	}

	return string(data), nil
}
