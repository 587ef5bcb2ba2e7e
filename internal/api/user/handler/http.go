package userHandler

import (
	userService "ReceiptTracker/internal/api/user/service"
	"ReceiptTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	userService userService.IUserService,
) *UserHandler {
	return &UserHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: userService,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	users := srv.Group("/user")

	users.Post("/", h.middleware.NewAPIKeyMiddleware, h.CreateUser)
	users.Get("/:user_id<int>", h.middleware.NewAPIKeyMiddleware, h.GetUser)
	users.Put("/:user_id<int>", h.middleware.NewAPIKeyMiddleware, h.UpdateUser)
	users.Delete("/:user_id<int>", h.middleware.NewAPIKeyMiddleware, h.DeleteUser)
}
