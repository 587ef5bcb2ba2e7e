// Package ownership validates that the identifiers of a request path form an
// unbroken chain: the user exists, owns the transaction, and the transaction
// owns the purchase.
package ownership

import (
	"ReceiptTracker/internal/api/purchase"
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/api/user"
	contextPkg "ReceiptTracker/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

type Subject string

const (
	SubjectUser        Subject = "user"
	SubjectTransaction Subject = "transaction"
	SubjectPurchase    Subject = "purchase"
)

type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindConflict
)

// Outcome is Ok, NotFound(subject) or Conflict(subject).
type Outcome struct {
	Kind    Kind
	Subject Subject
}

func OK() Outcome {
	return Outcome{Kind: KindOK}
}

func NotFound(s Subject) Outcome {
	return Outcome{Kind: KindNotFound, Subject: s}
}

func Conflict(s Subject) Outcome {
	return Outcome{Kind: KindConflict, Subject: s}
}

func (o Outcome) IsOK() bool {
	return o.Kind == KindOK
}

// Err maps the outcome to the domain error of the broken link.
func (o Outcome) Err() error {
	switch o.Kind {
	case KindNotFound:
		switch o.Subject {
		case SubjectUser:
			return user.ErrUserNotFound
		case SubjectTransaction:
			return transaction.ErrTransactionNotFound
		case SubjectPurchase:
			return purchase.ErrPurchaseNotFound
		}
	case KindConflict:
		switch o.Subject {
		case SubjectTransaction:
			return transaction.ErrTransactionNotOwned
		case SubjectPurchase:
			return purchase.ErrPurchaseNotOwned
		}
	}
	return nil
}

type Chain struct {
	UserID        int64
	TransactionID *int64
	PurchaseID    *int64
}

func ForUser(userID int64) Chain {
	return Chain{UserID: userID}
}

func ForTransaction(userID, transactionID int64) Chain {
	return Chain{UserID: userID, TransactionID: &transactionID}
}

func ForPurchase(userID, transactionID, purchaseID int64) Chain {
	return Chain{UserID: userID, TransactionID: &transactionID, PurchaseID: &purchaseID}
}

// Snapshot is the stored state of every link named by a chain.
type Snapshot struct {
	UserExists       bool          `db:"user_exists"`
	TransactionOwner sql.NullInt64 `db:"transaction_owner"`
	PurchaseOwner    sql.NullInt64 `db:"purchase_owner"`
}

func (s Snapshot) TransactionExists() bool {
	return s.TransactionOwner.Valid
}

func (s Snapshot) PurchaseExists() bool {
	return s.PurchaseOwner.Valid
}

// Resolve walks the chain from the user down and reports the first break.
func (s Snapshot) Resolve(chain Chain) Outcome {
	if !s.UserExists {
		return NotFound(SubjectUser)
	}

	if chain.TransactionID == nil {
		return OK()
	}
	if !s.TransactionOwner.Valid {
		return NotFound(SubjectTransaction)
	}
	if s.TransactionOwner.Int64 != chain.UserID {
		return Conflict(SubjectTransaction)
	}

	if chain.PurchaseID == nil {
		return OK()
	}
	if !s.PurchaseOwner.Valid {
		return NotFound(SubjectPurchase)
	}
	if s.PurchaseOwner.Int64 != *chain.TransactionID {
		return Conflict(SubjectPurchase)
	}

	return OK()
}

type Checker interface {
	Lookup(ctx context.Context, chain Chain) (Snapshot, error)
	Check(ctx context.Context, chain Chain) (Outcome, error)
	Validate(ctx context.Context, chain Chain) error
}

type checker struct {
	q   SQLExecutor
	log *logrus.Logger
}

func New(q SQLExecutor, log *logrus.Logger) Checker {
	return &checker{q: q, log: log}
}

func (c *checker) Lookup(ctx context.Context, chain Chain) (Snapshot, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var snapshot Snapshot

	argsKV := map[string]interface{}{
		"user_id":        chain.UserID,
		"transaction_id": chain.TransactionID,
		"purchase_id":    chain.PurchaseID,
	}

	query, args, err := sqlx.Named(queryLookupChain, argsKV)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Lookup named query preparation err")
		return Snapshot{}, err
	}

	query = c.q.Rebind(query)

	if err := c.q.QueryRowxContext(ctx, query, args...).StructScan(&snapshot); err != nil {
		c.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Lookup execution err")
		return Snapshot{}, err
	}

	return snapshot, nil
}

func (c *checker) Check(ctx context.Context, chain Chain) (Outcome, error) {
	snapshot, err := c.Lookup(ctx, chain)
	if err != nil {
		return Outcome{}, err
	}

	outcome := snapshot.Resolve(chain)
	if !outcome.IsOK() {
		c.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    chain.UserID,
			"subject":    outcome.Subject,
			"kind":       outcome.Kind,
		}).Warn("Ownership chain broken")
	}
	return outcome, nil
}

func (c *checker) Validate(ctx context.Context, chain Chain) error {
	outcome, err := c.Check(ctx, chain)
	if err != nil {
		return err
	}
	return outcome.Err()
}
