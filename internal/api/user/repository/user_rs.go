package userRepository

import (
	"ReceiptTracker/internal/api/user"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID        sql.NullInt64  `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *userRepository) CreateUser(ctx context.Context, u entity.User) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	argsKV := map[string]interface{}{
		"name":       u.Name,
		"email":      u.Email,
		"created_at": createdAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return 0, err
	}

	return id, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row UserDB

	query, args, err := sqlx.Named(queryGetUserByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    id,
			}).Warn("GetUserByID no rows found")
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return r.makeUser(row), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, u entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateUser")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating user")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the user; transactions, purchases and the budget go
// with it through ON DELETE CASCADE. Deleting a missing user is not an error.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteUser, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteUser")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting user")
		return err
	}

	return nil
}

func (r *userRepository) makeUser(row UserDB) entity.User {
	return entity.User{
		ID:        row.ID.Int64,
		Name:      row.Name.String,
		Email:     row.Email.String,
		CreatedAt: row.CreatedAt.Time,
	}
}
