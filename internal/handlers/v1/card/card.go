package card

import (
	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Card is the API response model for a credit card.
type Card struct {
	ID              string `json:"id" doc:"Card UUID"`
	Name            string `json:"name" doc:"Card name"`
	LimitTotal      string `json:"limitTotal" doc:"Credit limit"`
	ClosingDay      int    `json:"closingDay" doc:"Day of month the bill closes"`
	DueDay          int    `json:"dueDay" doc:"Day of month the bill is due"`
	Color           string `json:"color,omitempty" doc:"Display color"`
	AvailableCredit string `json:"availableCredit" doc:"Limit minus the open invoice of the current month"`
	OpenInvoice     string `json:"openInvoice" doc:"Unpaid total of the current month"`
	MonthTotal      string `json:"monthTotal" doc:"Everything charged this month, paid or not"`
}

func fromService(c service.Card) Card {
	return Card{
		ID:              c.ID.String(),
		Name:            c.Name,
		LimitTotal:      c.LimitTotal.String(),
		ClosingDay:      c.ClosingDay,
		DueDay:          c.DueDay,
		Color:           c.Color,
		AvailableCredit: c.AvailableCredit.String(),
		OpenInvoice:     c.OpenInvoice.String(),
		MonthTotal:      c.MonthTotal.String(),
	}
}

// Invoice is the API response model for one month of a card's bill.
type Invoice struct {
	CardID       string                    `json:"cardID" doc:"Card UUID"`
	Month        string                    `json:"month" doc:"Billing month, YYYY-MM"`
	From         string                    `json:"from" doc:"First day of the window"`
	To           string                    `json:"to" doc:"Last day of the window"`
	State        string                    `json:"state" doc:"OPEN while unpaid transactions remain, PAID otherwise"`
	Total        string                    `json:"total" doc:"Sum of the unpaid transactions"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Unpaid transactions in the window"`
}

func fromInvoice(inv ledger.Invoice) Invoice {
	return Invoice{
		CardID:       inv.CardID.String(),
		Month:        inv.From.Format(handlerutil.MonthFormat),
		From:         inv.From.Format(ledger.DateFormat),
		To:           inv.To.Format(ledger.DateFormat),
		State:        string(inv.State()),
		Total:        inv.Total.String(),
		Transactions: transaction.FromLedgerList(inv.Transactions),
	}
}
