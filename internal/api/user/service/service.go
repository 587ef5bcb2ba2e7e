package userService

import (
	"ReceiptTracker/internal/api/user"
	userRepository "ReceiptTracker/internal/api/user/repository"
	"ReceiptTracker/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type IUserService interface {
	CreateUser(ctx context.Context, req user.UserRequest) (int64, error)
	GetUser(ctx context.Context, id int64) (user.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req user.UserRequest) (user.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	log            *logrus.Logger
	userRepository userRepository.Repository
	cache          redis.IRedis
}

func NewUserService(log *logrus.Logger, ur userRepository.Repository, cache redis.IRedis) IUserService {
	return &userService{
		log:            log,
		userRepository: ur,
		cache:          cache,
	}
}
