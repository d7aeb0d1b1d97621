package account

import "github.com/carson-networks/ledger-server/internal/ledger"

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account UUID"`
	Name           string `json:"name" doc:"Account name"`
	Type           string `json:"type" doc:"BANK, WALLET, SAVINGS or INVESTMENT"`
	InitialBalance string `json:"initialBalance" doc:"Balance the account was opened with"`
	CurrentBalance string `json:"currentBalance" doc:"Initial balance plus paid income minus paid expense"`
	Color          string `json:"color,omitempty" doc:"Display color"`
}

// FromLedger converts an account with its derived balance.
func FromLedger(acc ledger.Account) Account {
	return Account{
		ID:             acc.ID.String(),
		Name:           acc.Name,
		Type:           string(acc.Type),
		InitialBalance: acc.InitialBalance.String(),
		CurrentBalance: acc.CurrentBalance.String(),
		Color:          acc.Color,
	}
}
