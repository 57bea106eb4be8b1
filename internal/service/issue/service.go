package issue

import (
	"context"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// issueAPI defines the remote calls needed by the issue service.
type issueAPI interface {
	ListIssues(ctx context.Context, projectID int64) ([]domain.Issue, error)
	GetIssue(ctx context.Context, id int64) (*domain.Issue, error)
	CreateIssue(ctx context.Context, in api.IssueRequest) (*domain.Issue, string, error)
	UpdateIssueStatus(ctx context.Context, id int64, status domain.IssueStatus) (*domain.Issue, string, error)
	AssignIssue(ctx context.Context, id, userID int64) (*domain.Issue, string, error)
	DeleteIssue(ctx context.Context, id int64) (string, error)
}

type notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Service implements the issue dispatchers. Status changes and assignment
// replace the whole record with what the server returns.
type Service struct {
	log    *slog.Logger
	api    issueAPI
	state  *store.Issues
	notify notifier
}

// NewService creates a new issue service instance.
func NewService(logger *slog.Logger, api issueAPI, state *store.Issues, notify notifier) *Service {
	return &Service{
		log:    logger.With("service", "issue"),
		api:    api,
		state:  state,
		notify: notify,
	}
}

// State returns a snapshot of the issue slice.
func (s *Service) State() store.IssueState {
	return s.state.Snapshot()
}

// Board groups the loaded issues by status.
func (s *Service) Board() map[domain.IssueStatus][]domain.Issue {
	return domain.GroupByStatus(s.state.Snapshot().Issues)
}

var (
	listCopy   = domain.StatusCopy{Fallback: "Failed to fetch project issues"}
	getCopy    = domain.StatusCopy{Fallback: "Failed to fetch issue"}
	createCopy = domain.StatusCopy{Fallback: "Failed to create issue"}
	statusCopy = domain.StatusCopy{Fallback: "Failed to update issue status"}
	assignCopy = domain.StatusCopy{Fallback: "Failed to assign issue to user"}
	deleteCopy = domain.StatusCopy{Fallback: "Failed to delete issue"}
)

func (s *Service) reject(ctx context.Context, err error) error {
	msg := domain.Describe(err, domain.StatusCopy{})
	s.state.Reject(store.FamilyIssueWrite, msg)
	s.notify.Error(ctx, msg)
	return err
}

func (s *Service) fail(ctx context.Context, t store.Ticket, msg string) {
	if s.state.Fail(ctx, t, msg) == nil {
		s.notify.Error(ctx, msg)
	}
}
