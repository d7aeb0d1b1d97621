package handlerutil

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
)

// MonthFormat is the wire format of a billing or summary month.
const MonthFormat = "2006-01"

// ServiceError maps a service error to the matching HTTP status.
func ServiceError(err error, msg string) error {
	switch {
	case service.IsNotFound(err):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

// ParseMonth parses YYYY-MM into the first day of that month. An empty
// string means the month of now.
func ParseMonth(s string, now time.Time) (time.Time, error) {
	if s == "" {
		first, _ := ledger.MonthWindow(now)
		return first, nil
	}
	month, err := time.ParseInLocation(MonthFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid month, expected YYYY-MM", err)
	}
	return month, nil
}

func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

// ParseOptionalID parses a uuid that may be left empty.
func ParseOptionalID(s, field string) (uuid.NullUUID, error) {
	if s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.NullUUID{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// FormatOptionalID renders an unset id as the empty string.
func FormatOptionalID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}
