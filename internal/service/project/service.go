package project

import (
	"context"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// projectAPI defines the remote calls needed by the project service.
type projectAPI interface {
	ListProjects(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error)
	SearchProjects(ctx context.Context, keyword string) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	CreateProject(ctx context.Context, in api.ProjectRequest) (*domain.Project, string, error)
	UpdateProject(ctx context.Context, id int64, in api.ProjectRequest) (*domain.Project, string, error)
	DeleteProject(ctx context.Context, id int64) (string, error)
	GetProjectChat(ctx context.Context, projectID int64) (*domain.Chat, error)
	InviteToProject(ctx context.Context, email string, projectID int64) (string, error)
	AcceptInvitation(ctx context.Context, token string) (*domain.Invitation, error)
}

type notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

type navigator interface {
	Navigate(ctx context.Context, url string)
}

// Service implements the project dispatchers.
type Service struct {
	log    *slog.Logger
	api    projectAPI
	state  *store.Projects
	notify notifier
	nav    navigator
}

// NewService creates a new project service instance.
func NewService(logger *slog.Logger, api projectAPI, state *store.Projects, notify notifier, nav navigator) *Service {
	return &Service{
		log:    logger.With("service", "project"),
		api:    api,
		state:  state,
		notify: notify,
		nav:    nav,
	}
}

// State returns a snapshot of the project slice.
func (s *Service) State() store.ProjectState {
	return s.state.Snapshot()
}

// Success toasts used when the server sends no message of its own.
const (
	msgCreated = "Project created successfully!"
	msgUpdated = "Project updated successfully!"
	msgDeleted = "Project deleted successfully!"
)

var (
	createCopy = domain.StatusCopy{Fallback: "Failed to create project"}
	updateCopy = domain.StatusCopy{Fallback: "Failed to update project"}
	deleteCopy = domain.StatusCopy{Fallback: "Failed to delete project"}
	readCopy   = domain.StatusCopy{}
)
