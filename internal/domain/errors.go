package domain

import "errors"

var (
	// Split / expense errors
	ErrSplitMismatch     = errors.New("explicit split values do not match expense amount")
	ErrInvalidExpense    = errors.New("invalid expense")
	ErrInvalidSettlement = errors.New("invalid settlement")

	// Not-found errors
	ErrLedgerNotFound     = errors.New("ledger not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrCardNotFound       = errors.New("card not found")
	ErrObligationNotFound = errors.New("obligation not found")

	// Reconciliation errors
	ErrReconciliationAborted = errors.New("reconciliation aborted: source data unreadable")
)
