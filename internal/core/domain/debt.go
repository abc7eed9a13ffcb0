package domain

import "time"

// Debt represents a single loan record owed to the lender.
type Debt struct {
	DebtID       int64      `json:"debtID"`
	LenderID     string     `json:"lenderID"`   // LINE user ID of the lender
	BorrowerID   string     `json:"borrowerID"` // may be a synthesized placeholder, see IdentityResolver
	BorrowerName string     `json:"borrowerName"`
	Amount       int64      `json:"amount"` // minor units (cents), always > 0
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"createdAt"`
	IsPaid       bool       `json:"isPaid"`
	PaidAt       *time.Time `json:"paidAt,omitempty"` // non-nil iff IsPaid
}

// Reminder is an append-only log entry recording that a repayment
// reminder was sent for a debt.
type Reminder struct {
	ReminderID int64     `json:"reminderID"`
	DebtID     int64     `json:"debtID"`
	SentAt     time.Time `json:"sentAt"`
}

// DefaultDescription is stored when a record command carries no description tokens.
const DefaultDescription = "未指定項目"
