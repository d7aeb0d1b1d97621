package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction relative to its settlement target.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeBank       AccountType = "BANK"
	AccountTypeWallet     AccountType = "WALLET"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeBank, AccountTypeWallet, AccountTypeSavings, AccountTypeInvestment:
		return true
	}
	return false
}

// Operational reports whether transactions on accounts of this type count
// towards monthly income and expense. Savings and investments are reserves.
func (t AccountType) Operational() bool {
	return t != AccountTypeSavings && t != AccountTypeInvestment
}

// Account is a money holder. CurrentBalance is derived and always recomputed
// from transactions, InitialBalance is fixed at creation.
type Account struct {
	ID             uuid.UUID
	Name           string
	Type           AccountType
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Color          string
}

// Transaction is a single ledger entry bound to exactly one of an account or a card.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Type        TransactionType
	CategoryID  string
	AccountID   uuid.NullUUID
	CardID      uuid.NullUUID
	IsPaid      bool

	InstallmentCurrent   int
	InstallmentTotal     int
	RelatedTransactionID uuid.NullUUID
	RelatedRecurringID   uuid.NullUUID
}

// BoundToAccount reports whether t settles against the given account.
func (t Transaction) BoundToAccount(id uuid.UUID) bool {
	return t.AccountID.Valid && t.AccountID.UUID == id
}

// BoundToCard reports whether t settles against the given card.
func (t Transaction) BoundToCard(id uuid.UUID) bool {
	return t.CardID.Valid && t.CardID.UUID == id
}

// CreditCard is a card with a limit and a monthly billing cycle.
// ClosingDay and DueDay are days of month (1-31) with no month or year.
type CreditCard struct {
	ID         uuid.UUID
	Name       string
	LimitTotal decimal.Decimal
	ClosingDay int
	DueDay     int
	Color      string
}

// RecurringTransaction is a template that produces one transaction per month
// on a fixed day of month. It is not a ledger entry itself.
type RecurringTransaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	DayOfMonth  int
	Type        TransactionType
	CategoryID  string
	AccountID   uuid.NullUUID
	CardID      uuid.NullUUID
	Active      bool
}

// HasSingleBinding reports whether exactly one of AccountID or CardID is set.
func (r RecurringTransaction) HasSingleBinding() bool {
	return r.AccountID.Valid != r.CardID.Valid
}

// Category labels transactions. The core passes categories through untouched.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Type  TransactionType
}

// PaymentCategoryID is the category given to invoice payment transactions.
const PaymentCategoryID = "payment"

// NewID returns a fresh random identifier. Tests may replace it.
var NewID = func() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
