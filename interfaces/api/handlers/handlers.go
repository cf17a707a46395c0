package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskflow/domain/policy"
	"taskflow/domain/services"
	"taskflow/pkg/utils"
)

// Services contains all the services needed for handlers.
type Services struct {
	UserService     services.UserService
	TaskService     services.TaskService
	ActivityService services.ActivityService
	KPIService      services.KPIService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	UserHandler     *UserHandler
	TaskHandler     *TaskHandler
	ActivityHandler *ActivityHandler
	KPIHandler      *KPIHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler:     NewUserHandler(services.UserService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		ActivityHandler: NewActivityHandler(services.ActivityService),
		KPIHandler:      NewKPIHandler(services.KPIService),
	}
}

// actorFromContext converts the authenticated identity into a policy actor.
func actorFromContext(c *fiber.Ctx) (policy.Actor, error) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return policy.Actor{}, err
	}
	return policy.Actor{ID: user.ID, Role: user.Role}, nil
}

// serviceErrorResponse maps the service error taxonomy onto HTTP statuses:
// validation 400, authentication 401, authorization 403, not found 404,
// conflict 409.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrUserNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
		return utils.ConflictResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
