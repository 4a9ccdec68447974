package chat

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/meupdi/pdi/core/apiclient"
	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/core/sanitizer"
	"github.com/meupdi/pdi/core/validator"
	"github.com/meupdi/pdi/pkg/async"
	"github.com/meupdi/pdi/plan"
)

// Exchange is the result of sending one message.
type Exchange struct {
	User      Message
	Assistant Message
}

// Conversation is a plan with its chat history.
type Conversation struct {
	Plan     plan.Plan
	Messages []Message
}

// Service is the chat API.
type Service struct {
	client *apiclient.Client
	plans  *plan.Service
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

// New creates a Service. plans is used by Load.
func New(client *apiclient.Client, plans *plan.Service, opts ...Option) *Service {
	s := &Service{client: client, plans: plans, logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func chatPath(planID uuid.UUID) string {
	return plan.Path(planID) + "/chat"
}

// History returns the plan's messages, oldest first.
func (s *Service) History(ctx context.Context, planID uuid.UUID) ([]Message, error) {
	if planID == uuid.Nil {
		return nil, plan.ErrInvalidID
	}

	var out struct {
		Messages []Message `json:"messages"`
	}
	if err := s.client.JSON(ctx, http.MethodGet, chatPath(planID), nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// Send posts content as the user and waits for the assistant's reply.
func (s *Service) Send(ctx context.Context, planID uuid.UUID, content string) (Exchange, error) {
	if planID == uuid.Nil {
		return Exchange{}, plan.ErrInvalidID
	}
	content = sanitizer.Message(content)
	if err := validator.Apply(
		validator.Required("content", content),
		validator.MaxLen("content", content, sanitizer.MaxMessageLength),
	); err != nil {
		return Exchange{}, err
	}

	in := struct {
		Content string `json:"content"`
		Role    Role   `json:"role"`
	}{content, RoleUser}

	var out []Message
	if err := s.client.JSON(ctx, http.MethodPost, chatPath(planID), in, &out); err != nil {
		return Exchange{}, err
	}
	if len(out) != 2 {
		return Exchange{}, ErrUnexpectedReply
	}

	s.logger.DebugContext(ctx, "message exchanged",
		logger.Component("chat"),
		logger.PlanID(planID),
		logger.Key("assistant_status", string(out[1].Status)),
	)
	return Exchange{User: out[0], Assistant: out[1]}, nil
}

// Load fetches the plan and its history concurrently.
func (s *Service) Load(ctx context.Context, planID uuid.UUID) (Conversation, error) {
	if planID == uuid.Nil {
		return Conversation{}, plan.ErrInvalidID
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	planF := async.Async(ctx, planID, s.plans.Get)
	historyF := async.Async(ctx, planID, s.History)

	p, err := planF.Await()
	if err != nil {
		return Conversation{}, err
	}
	msgs, err := historyF.Await()
	if err != nil {
		return Conversation{}, err
	}
	return Conversation{Plan: p, Messages: msgs}, nil
}
