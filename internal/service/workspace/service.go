// Package workspace opens a project screen: details, issues and chat
// history are loaded together.
package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

type projectLoader interface {
	FetchProjectByID(ctx context.Context, id int64) (*domain.Project, error)
}

type issueLoader interface {
	FetchIssues(ctx context.Context, projectID int64) ([]domain.Issue, error)
}

type chatLoader interface {
	FetchMessages(ctx context.Context, projectID int64) ([]domain.Message, error)
}

// View is everything a project screen shows.
type View struct {
	Project  *domain.Project
	Issues   []domain.Issue
	Messages []domain.Message
}

// Service loads project screens.
type Service struct {
	log      *slog.Logger
	projects projectLoader
	issues   issueLoader
	chat     chatLoader
}

// NewService creates a new workspace service instance.
func NewService(logger *slog.Logger, projects projectLoader, issues issueLoader, chat chatLoader) *Service {
	return &Service{
		log:      logger.With("service", "workspace"),
		projects: projects,
		issues:   issues,
		chat:     chat,
	}
}

// Open loads the project, its issues and its chat history concurrently. The
// first failure cancels the other loads and is returned.
func (s *Service) Open(ctx context.Context, projectID int64) (*View, error) {
	if projectID <= 0 {
		return nil, domain.NewValidationError("project_id", "Project ID is required")
	}

	var v View
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.projects.FetchProjectByID(gctx, projectID)
		v.Project = p
		return err
	})
	g.Go(func() error {
		list, err := s.issues.FetchIssues(gctx, projectID)
		v.Issues = list
		return err
	})
	g.Go(func() error {
		list, err := s.chat.FetchMessages(gctx, projectID)
		v.Messages = list
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("workspace.Open: %w", err)
	}

	s.log.DebugContext(ctx, "workspace opened",
		slog.Int64("project_id", projectID),
		slog.Int("issues", len(v.Issues)),
		slog.Int("messages", len(v.Messages)))
	return &v, nil
}
