package models

import (
	"database/sql"
	"time"
)

// Debt is the persisted shape of a loan record.
type Debt struct {
	DebtID       int64        `db:"id"`
	LenderID     string       `db:"lender_id"`
	BorrowerID   string       `db:"borrower_id"`
	BorrowerName string       `db:"borrower_name"`
	Amount       int64        `db:"amount"` // minor units
	Description  string       `db:"description"`
	CreatedAt    time.Time    `db:"created_at"`
	IsPaid       bool         `db:"is_paid"`
	PaidAt       sql.NullTime `db:"paid_at"`
}

// Reminder is the persisted shape of a reminder log entry.
type Reminder struct {
	ReminderID int64     `db:"id"`
	DebtID     int64     `db:"debt_id"`
	SentAt     time.Time `db:"sent_at"`
}
