package api

import (
	"errors"
	"log/slog"
	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

// Register mounts the handler under /api/v1.
func Register(app *fiber.App, h SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/fcfs", h.FirstComeFirstServe)
		v1.Post("/rr", h.RoundRobin)
		v1.Post("/srtf", h.ShortestRemainingTimeFirst)
		v1.Post("/all", h.AllAlgorithms)
		v1.Get("/health", h.Health)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	all, err := schedulers.NewAll(
		request.Quantum(s.config.RoundRobinTimeQuantum),
		request.ContextSwitchOr(s.config.ContextSwitch),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	results := schedulers.Compare(processes, all...)
	response := make([]responses.ScheduleResponse, 0, len(results))
	for _, r := range results {
		s.logResult(r)
		response = append(response, schedulers.GenerateResponse(r))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok", "algorithms": schedulers.Algorithms()})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, processes, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	scheduler, err := schedulers.New(
		algorithm,
		request.Quantum(s.config.RoundRobinTimeQuantum),
		request.ContextSwitchOr(s.config.ContextSwitch),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	result := scheduler.Run(processes)
	s.logResult(result)
	return ctx.JSON(schedulers.GenerateResponse(result))
}

var errBadRequestBody = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequests, []core.Process, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("body parse failed", "error", err)
		return request, nil, errBadRequestBody
	}
	processes, err := request.Processes()
	if err != nil {
		return request, nil, err
	}
	return request, processes, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, core.ErrInvalidInput),
		errors.Is(err, core.ErrInvalidConfiguration),
		errors.Is(err, core.ErrUnknownAlgorithm):
		status = fiber.StatusBadRequest
	}
	s.logger.Warn("schedule request rejected", "path", ctx.Path(), "status", status, "error", err)
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}

func (s *SchedulerHandlerImpl) logResult(r core.ScheduleResult) {
	s.logger.Info("schedule complete",
		"algorithm", r.Algorithm,
		"processes", len(r.Processes),
		"makespan", r.Makespan,
		"avg_waiting", r.AvgWaiting,
		"avg_turnaround", r.AvgTurnaround,
	)
}
