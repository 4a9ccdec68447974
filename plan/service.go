package plan

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/meupdi/pdi/core/apiclient"
	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/core/sanitizer"
	"github.com/meupdi/pdi/core/validator"
)

const basePath = "/api/pdis"

// Service is the plans API.
type Service struct {
	client *apiclient.Client
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service on top of client.
func New(client *apiclient.Client, opts ...Option) *Service {
	s := &Service{client: client, logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the API path of plan id.
func Path(id uuid.UUID) string {
	return basePath + "/" + id.String()
}

// List returns the current user's plans.
func (s *Service) List(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := s.client.JSON(ctx, http.MethodGet, basePath, nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Create starts a plan. An empty status means StatusDraft.
func (s *Service) Create(ctx context.Context, name string, status Status) (Plan, error) {
	name = sanitizer.PlanName(name)
	if status == "" {
		status = StatusDraft
	}
	if err := validator.Apply(
		validator.Required("name", name),
		validator.OneOf("status", string(status), statusNames()...),
	); err != nil {
		return Plan{}, err
	}

	in := struct {
		Name   string `json:"name"`
		Status Status `json:"status"`
	}{name, status}

	var p Plan
	if err := s.client.JSON(ctx, http.MethodPost, basePath, in, &p); err != nil {
		return Plan{}, err
	}
	s.logger.InfoContext(ctx, "plan created", logger.Component("plan"), logger.PlanID(p.ID))
	return p, nil
}

// Get fetches one plan including its content.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Plan, error) {
	if id == uuid.Nil {
		return Plan{}, ErrInvalidID
	}
	var p Plan
	if err := s.client.JSON(ctx, http.MethodGet, Path(id), nil, &p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Rename changes a plan's name.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (Plan, error) {
	if id == uuid.Nil {
		return Plan{}, ErrInvalidID
	}
	name = sanitizer.PlanName(name)
	if err := validator.Apply(validator.Required("name", name)); err != nil {
		return Plan{}, err
	}

	in := struct {
		Name string `json:"name"`
	}{name}

	var p Plan
	if err := s.client.JSON(ctx, http.MethodPatch, Path(id), in, &p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Delete removes a plan.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	if err := s.client.JSON(ctx, http.MethodDelete, Path(id), nil, nil); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "plan deleted", logger.Component("plan"), logger.PlanID(id))
	return nil
}

func statusNames() []string {
	all := Statuses()
	names := make([]string, len(all))
	for i, st := range all {
		names[i] = string(st)
	}
	return names
}
