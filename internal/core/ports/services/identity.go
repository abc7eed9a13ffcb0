package services

import "context"

// IdentityResolver maps a typed borrower name to a platform user
// identity. Real resolution needs the borrower to be a known contact;
// the shipped implementation synthesizes a placeholder ID instead.
type IdentityResolver interface {
	ResolveBorrowerID(ctx context.Context, borrowerName string) (string, error)
}
