package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
	"github.com/Achamanp/ProjectManagentApp/internal/task"
)

type chatAPI interface {
	ListMessages(ctx context.Context, projectID int64) ([]domain.Message, error)
	SendMessage(ctx context.Context, in api.MessageRequest) (*domain.Message, error)
}

// Service implements the chat dispatchers.
type Service struct {
	log          *slog.Logger
	api          chatAPI
	state        *store.Chat
	clock        clockwork.Clock
	refetchDelay time.Duration

	mu    sync.Mutex
	scope *task.Scope
}

// NewService creates a new chat service instance. A positive refetchDelay
// schedules a history refetch that long after every successful send.
func NewService(logger *slog.Logger, api chatAPI, state *store.Chat, clock clockwork.Clock, refetchDelay time.Duration) *Service {
	return &Service{
		log:          logger.With("service", "chat"),
		api:          api,
		state:        state,
		clock:        clock,
		refetchDelay: refetchDelay,
		scope:        task.NewScope(context.Background()),
	}
}

// State returns a snapshot of the chat slice.
func (s *Service) State() store.ChatState {
	return s.state.Snapshot()
}

// SendInput holds parameters for posting a chat message.
type SendInput struct {
	SenderID  int64
	ProjectID int64
	Content   string
}

// Validate validates the send input.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.SenderID <= 0 {
		errs = append(errs, domain.FieldError{Field: "sender_id", Message: "Sender ID is required"})
	}
	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "Project ID is required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "Message content is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FetchMessages replaces the history with the messages of projectID.
func (s *Service) FetchMessages(ctx context.Context, projectID int64) ([]domain.Message, error) {
	t := s.state.Begin(store.FamilyMessages)

	list, err := s.api.ListMessages(ctx, projectID)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, domain.StatusCopy{Fallback: "Failed to fetch messages"}))
		return nil, fmt.Errorf("chat.FetchMessages: %w", err)
	}

	if err := s.state.MessagesLoaded(ctx, t, projectID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// SendMessage posts a message and appends it to the history. When the server
// does not echo the message back, the request itself is appended.
func (s *Service) SendMessage(ctx context.Context, input SendInput) (*domain.Message, error) {
	if err := input.Validate(); err != nil {
		s.state.Reject(store.FamilySend, domain.Describe(err, domain.StatusCopy{}))
		return nil, err
	}

	req := api.MessageRequest{
		SenderID:  input.SenderID,
		ProjectID: input.ProjectID,
		Content:   strings.TrimSpace(input.Content),
	}
	t := s.state.BeginWrite(store.FamilySend)

	msg, err := s.api.SendMessage(ctx, req)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, domain.StatusCopy{Fallback: "Failed to send message"}))
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}
	if msg == nil || msg.Content == "" {
		msg = &domain.Message{
			SenderID:  req.SenderID,
			ProjectID: req.ProjectID,
			Content:   req.Content,
			CreatedAt: s.clock.Now().UTC().Format(time.RFC3339),
		}
	}
	if msg.ProjectID == 0 {
		msg.ProjectID = req.ProjectID
	}

	if err := s.state.Sent(ctx, t, *msg); err != nil {
		return nil, err
	}

	s.scheduleRefetch(req.ProjectID)
	return msg, nil
}

func (s *Service) scheduleRefetch(projectID int64) {
	if s.refetchDelay <= 0 {
		return
	}

	s.mu.Lock()
	scope := s.scope
	s.mu.Unlock()

	scope.Run(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.clock.After(s.refetchDelay):
		}
		if _, err := s.FetchMessages(ctx, projectID); err != nil {
			s.log.DebugContext(ctx, "chat refetch failed",
				slog.Int64("project_id", projectID),
				slog.String("error", err.Error()))
		}
		return nil
	})
}

// ClearErrors drops the fetch and send errors.
func (s *Service) ClearErrors() {
	s.state.ClearError()
}

// Reset cancels scheduled refetches and empties the history.
func (s *Service) Reset() {
	s.mu.Lock()
	old := s.scope
	s.scope = task.NewScope(context.Background())
	s.mu.Unlock()

	old.Close()
	s.state.Reset()
}

// Close cancels scheduled refetches and waits for them to return.
func (s *Service) Close() {
	s.mu.Lock()
	scope := s.scope
	s.mu.Unlock()
	scope.Close()
}
