package ledger

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// SplitInstallments expands a card purchase into InstallmentTotal monthly
// postings. It applies only when tx is card bound, InstallmentTotal > 1 and
// card is the card tx is bound to. Otherwise tx is returned alone, with an
// id assigned if it had none.
//
// Postings are dated i months after tx.Date (clamped to month end), numbered
// 1..N, and share one freshly generated RelatedTransactionID. Amounts are
// rounded to places decimals with the remainder on the last posting.
func SplitInstallments(tx Transaction, card *CreditCard, places int32) []Transaction {
	if !shouldSplit(tx, card) {
		if tx.ID == uuid.Nil {
			tx.ID = NewID()
		}
		return []Transaction{tx}
	}

	groupID := NewID()
	shares := SplitAmount(tx.Amount, tx.InstallmentTotal, places)
	out := make([]Transaction, len(shares))
	for i, share := range shares {
		posting := tx
		posting.ID = NewID()
		posting.Amount = share
		posting.Date = AddMonths(tx.Date, i)
		posting.InstallmentCurrent = i + 1
		posting.RelatedTransactionID = uuid.NullUUID{UUID: groupID, Valid: true}
		out[i] = posting
	}

	AssertInstallmentSum(tx.Amount, out)
	return out
}

func shouldSplit(tx Transaction, card *CreditCard) bool {
	return card != nil &&
		tx.CardID.Valid &&
		tx.CardID.UUID == card.ID &&
		tx.InstallmentTotal > 1
}

// AssertInstallmentSum panics when postings do not add up to amount. A
// mismatch is a bug in the splitter, never a data condition.
func AssertInstallmentSum(amount decimal.Decimal, postings []Transaction) {
	total := decimal.Zero
	for _, p := range postings {
		total = total.Add(p.Amount)
	}
	if !total.Equal(amount) {
		panic(fmt.Sprintf("ledger: installment sum %s != original amount %s", total, amount))
	}
}
