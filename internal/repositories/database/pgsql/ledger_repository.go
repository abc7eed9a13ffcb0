package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonaspay/jonaspay-bot/internal/apperrors"
	"github.com/jonaspay/jonaspay-bot/internal/core/domain"
	portsrepo "github.com/jonaspay/jonaspay-bot/internal/core/ports/repositories"
	"github.com/jonaspay/jonaspay-bot/internal/models"
)

type PgxLedgerRepository struct {
	db *pgxpool.Pool
}

func newPgxLedgerRepository(db *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{db: db}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// Helper to convert domain.Debt to models.Debt
func toModelDebt(d domain.Debt) models.Debt {
	m := models.Debt{
		DebtID:       d.DebtID,
		LenderID:     d.LenderID,
		BorrowerID:   d.BorrowerID,
		BorrowerName: d.BorrowerName,
		Amount:       d.Amount,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
		IsPaid:       d.IsPaid,
	}
	if d.PaidAt != nil {
		m.PaidAt.Valid = true
		m.PaidAt.Time = *d.PaidAt
	}
	return m
}

// Helper to convert models.Debt to domain.Debt
func toDomainDebt(m models.Debt) domain.Debt {
	d := domain.Debt{
		DebtID:       m.DebtID,
		LenderID:     m.LenderID,
		BorrowerID:   m.BorrowerID,
		BorrowerName: m.BorrowerName,
		Amount:       m.Amount,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		IsPaid:       m.IsPaid,
	}
	if m.PaidAt.Valid {
		t := m.PaidAt.Time
		d.PaidAt = &t
	}
	return d
}

func (r *PgxLedgerRepository) SaveDebt(ctx context.Context, debt domain.Debt) (int64, error) {
	modelDebt := toModelDebt(debt)
	query := `
        INSERT INTO debts (lender_id, borrower_id, borrower_name, amount, description, created_at, is_paid)
        VALUES ($1, $2, $3, $4, $5, $6, FALSE)
        RETURNING id;
    `
	var debtID int64
	err := r.db.QueryRow(ctx, query,
		modelDebt.LenderID,
		modelDebt.BorrowerID,
		modelDebt.BorrowerName,
		modelDebt.Amount,
		modelDebt.Description,
		modelDebt.CreatedAt,
	).Scan(&debtID)
	if err != nil {
		return 0, fmt.Errorf("failed to save debt: %w", err)
	}
	return debtID, nil
}

func (r *PgxLedgerRepository) FindDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error) {
	query := `
		SELECT id, lender_id, borrower_id, borrower_name, amount, description, created_at, is_paid, paid_at
		FROM debts
		WHERE id = $1;
	`
	var modelDebt models.Debt
	err := r.db.QueryRow(ctx, query, debtID).Scan(
		&modelDebt.DebtID,
		&modelDebt.LenderID,
		&modelDebt.BorrowerID,
		&modelDebt.BorrowerName,
		&modelDebt.Amount,
		&modelDebt.Description,
		&modelDebt.CreatedAt,
		&modelDebt.IsPaid,
		&modelDebt.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %d: %w", debtID, err)
	}

	domainDebt := toDomainDebt(modelDebt)
	return &domainDebt, nil
}

func (r *PgxLedgerRepository) FindUnpaidDebts(ctx context.Context, lenderID string) ([]domain.Debt, error) {
	query := `
		SELECT id, lender_id, borrower_id, borrower_name, amount, description, created_at, is_paid, paid_at
		FROM debts
		WHERE lender_id = $1 AND is_paid = FALSE
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lenderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid debts: %w", err)
	}
	defer rows.Close()

	return scanDebtRows(rows)
}

func (r *PgxLedgerRepository) FindUnpaidDebtsByBorrower(ctx context.Context, lenderID, borrowerID string) ([]domain.Debt, error) {
	query := `
		SELECT id, lender_id, borrower_id, borrower_name, amount, description, created_at, is_paid, paid_at
		FROM debts
		WHERE lender_id = $1 AND borrower_id = $2 AND is_paid = FALSE
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lenderID, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query borrower debts: %w", err)
	}
	defer rows.Close()

	return scanDebtRows(rows)
}

func scanDebtRows(rows pgx.Rows) ([]domain.Debt, error) {
	var debts []domain.Debt
	for rows.Next() {
		var m models.Debt
		if err := rows.Scan(
			&m.DebtID,
			&m.LenderID,
			&m.BorrowerID,
			&m.BorrowerName,
			&m.Amount,
			&m.Description,
			&m.CreatedAt,
			&m.IsPaid,
			&m.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, toDomainDebt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debt rows: %w", err)
	}
	return debts, nil
}

// MarkDebtPaid sets is_paid/paid_at unconditionally. Marking an
// already-paid debt succeeds and overwrites paid_at; last write wins.
func (r *PgxLedgerRepository) MarkDebtPaid(ctx context.Context, debtID int64, paidAt time.Time) (bool, error) {
	query := `
		UPDATE debts
		SET is_paid = TRUE, paid_at = $2
		WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query, debtID, paidAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark debt %d paid: %w", debtID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgxLedgerRepository) LogReminder(ctx context.Context, debtID int64, sentAt time.Time) (int64, error) {
	query := `
		INSERT INTO reminders (debt_id, sent_at)
		VALUES ($1, $2)
		RETURNING id;
	`
	var reminderID int64
	if err := r.db.QueryRow(ctx, query, debtID, sentAt).Scan(&reminderID); err != nil {
		return 0, fmt.Errorf("failed to log reminder for debt %d: %w", debtID, err)
	}
	return reminderID, nil
}
