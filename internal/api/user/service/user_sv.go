package userService

import (
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/api/user"
	"ReceiptTracker/internal/entity"
	"ReceiptTracker/internal/ownership"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/response"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *userService) CreateUser(ctx context.Context, req user.UserRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(ctx, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}

	id, err := repo.User.CreateUser(ctx, entity.User{
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return 0, response.Or(err, user.ErrCreateUser)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User created")

	return id, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (user.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(ctx, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return user.UserResponse{}, err
	}

	u, err := repo.User.GetUserByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.UserResponse{Name: u.Name, Email: u.Email}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req user.UserRequest) (user.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return user.UserResponse{}, err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.Ownership.Validate(ctx, ownership.ForUser(id)); err != nil {
		return user.UserResponse{}, err
	}

	if err := repo.User.UpdateUser(ctx, entity.User{ID: id, Name: req.Name, Email: req.Email}); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    id,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return user.UserResponse{}, response.Or(err, user.ErrUpdateUser)
	}

	updated, err := repo.User.GetUserByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit user update")
		return user.UserResponse{}, response.Or(err, user.ErrUpdateUser)
	}

	return user.UserResponse{Name: updated.Name, Email: updated.Email}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer func() { _ = repo.Rollback() }()

	if err := repo.User.DeleteUser(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    id,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return response.Or(err, user.ErrDeleteUser)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit user deletion")
		return response.Or(err, user.ErrDeleteUser)
	}

	report.InvalidateUser(ctx, s.cache, s.log, requestID, id)

	return nil
}
