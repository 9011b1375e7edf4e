package engine

import (
	"time"

	"github.com/iho/splitledger/internal/domain"
)

// ResolveBillingCycle maps a transaction date and a card's closing day to the
// statement month in which the charge is due, normalized to the first of the
// month for bucketing.
//
// A charge on or before the closing day belongs to the cycle closing this
// month and is due next calendar month; a later charge rolls into the next
// cycle and is due the month after next. A closing day outside 1..31 falls
// back to domain.DefaultClosingDay.
func ResolveBillingCycle(transactionDate time.Time, closingDay int) time.Time {
	if closingDay < 1 || closingDay > 31 {
		closingDay = domain.DefaultClosingDay
	}

	offset := time.Month(1)
	if transactionDate.Day() > closingDay {
		offset = 2
	}

	return time.Date(transactionDate.Year(), transactionDate.Month()+offset, 1, 0, 0, 0, 0, time.UTC)
}
