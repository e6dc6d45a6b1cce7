package api

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"log"
	"scheduling-simulator/config"
	"scheduling-simulator/internal/requests"
	"scheduling-simulator/internal/schedulers"
	"scheduling-simulator/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handler under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.Algorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	processes, err := request.Processes()
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := schedulers.RunAll(s.config.Algorithms, processes)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": s.config.Algorithms})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	processes, err := request.Processes()
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := schedulers.Run(algorithm, processes)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func writeError(ctx *fiber.Ctx, err error) error {
	var invalid *requests.InvalidInputError
	if errors.As(err, &invalid) || errors.Is(err, util.ErrEmptyInput) || errors.Is(err, schedulers.ErrUnknownAlgorithm) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("can not process request:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
