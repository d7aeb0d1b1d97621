package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

func newUUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func some(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func accountTx(accountID uuid.UUID, typ TransactionType, amount string, paid bool, date string) Transaction {
	return Transaction{
		ID:          newUUID(),
		Description: "account tx",
		Amount:      dec(amount),
		Date:        day(date),
		Type:        typ,
		CategoryID:  "general",
		AccountID:   some(accountID),
		IsPaid:      paid,
	}
}

func cardTx(cardID uuid.UUID, amount string, paid bool, date string) Transaction {
	return Transaction{
		ID:          newUUID(),
		Description: "card tx",
		Amount:      dec(amount),
		Date:        day(date),
		Type:        TransactionTypeExpense,
		CategoryID:  "shopping",
		CardID:      some(cardID),
		IsPaid:      paid,
	}
}
