// Package ownershiptest provides an in-memory ownership.Checker for service tests.
package ownershiptest

import (
	"ReceiptTracker/internal/ownership"
	"context"
	"database/sql"
)

type Checker struct {
	Snapshot ownership.Snapshot
	Err      error
	Chains   []ownership.Chain
}

// Owned returns a checker whose user, transaction and purchase all exist and
// link to each other.
func Owned(userID, transactionID int64) *Checker {
	return &Checker{Snapshot: ownership.Snapshot{
		UserExists:       true,
		TransactionOwner: sql.NullInt64{Int64: userID, Valid: true},
		PurchaseOwner:    sql.NullInt64{Int64: transactionID, Valid: true},
	}}
}

func Missing() *Checker {
	return &Checker{}
}

func Failing(err error) *Checker {
	return &Checker{Err: err}
}

func (c *Checker) Lookup(_ context.Context, chain ownership.Chain) (ownership.Snapshot, error) {
	c.Chains = append(c.Chains, chain)
	if c.Err != nil {
		return ownership.Snapshot{}, c.Err
	}
	return c.Snapshot, nil
}

func (c *Checker) Check(ctx context.Context, chain ownership.Chain) (ownership.Outcome, error) {
	snapshot, err := c.Lookup(ctx, chain)
	if err != nil {
		return ownership.Outcome{}, err
	}
	return snapshot.Resolve(chain), nil
}

func (c *Checker) Validate(ctx context.Context, chain ownership.Chain) error {
	outcome, err := c.Check(ctx, chain)
	if err != nil {
		return err
	}
	return outcome.Err()
}
