package repositories

import (
	"context"
	"time"

	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
)

// DebtReader defines read operations for debt records
type DebtReader interface {
	// FindDebtByID retrieves a specific debt by its ID.
	// Returns apperrors.ErrNotFound when no such debt exists.
	FindDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error)

	// FindUnpaidDebts retrieves all unpaid debts for a lender, newest first.
	FindUnpaidDebts(ctx context.Context, lenderID string) ([]domain.Debt, error)

	// FindUnpaidDebtsByBorrower retrieves a single borrower's unpaid debts, newest first.
	FindUnpaidDebtsByBorrower(ctx context.Context, lenderID, borrowerID string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt records
type DebtWriter interface {
	// SaveDebt persists a new debt and returns its store-assigned ID.
	SaveDebt(ctx context.Context, debt domain.Debt) (int64, error)

	// MarkDebtPaid sets is_paid and paid_at on the debt. It reports
	// whether a row existed and was updated. Marking an already-paid
	// debt succeeds again and overwrites paid_at (last write wins).
	MarkDebtPaid(ctx context.Context, debtID int64, paidAt time.Time) (bool, error)
}

// ReminderWriter defines the append-only reminder log
type ReminderWriter interface {
	// LogReminder appends a reminder log entry and returns its ID.
	LogReminder(ctx context.Context, debtID int64, sentAt time.Time) (int64, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
// This is a facade for clients that need access to all operations
type LedgerRepositoryFacade interface {
	DebtReader
	DebtWriter
	ReminderWriter
}
