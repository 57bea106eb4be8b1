package project

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// FetchProjects loads the project list. Filter values equal to "all" are
// not sent.
func (s *Service) FetchProjects(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
	t := s.state.Begin(store.FamilyProjects)

	list, err := s.api.ListProjects(ctx, filters)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, readCopy))
		return nil, fmt.Errorf("project.FetchProjects: %w", err)
	}

	if err := s.state.ListLoaded(ctx, t, list); err != nil {
		return nil, err
	}
	return list, nil
}

// SearchProjects fills the search results. An empty keyword clears them.
func (s *Service) SearchProjects(ctx context.Context, keyword string) ([]domain.Project, error) {
	keyword = domain.NormalizeKeyword(keyword)
	if keyword == "" {
		s.state.Update(func(st *store.ProjectState) { st.SearchResults = []domain.Project{} })
		return []domain.Project{}, nil
	}

	t := s.state.Begin(store.FamilySearch)

	list, err := s.api.SearchProjects(ctx, keyword)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, readCopy))
		return nil, fmt.Errorf("project.SearchProjects: %w", err)
	}

	if err := s.state.SearchLoaded(ctx, t, list); err != nil {
		return nil, err
	}
	return list, nil
}

// FetchProjectByID loads one project into the detail view.
func (s *Service) FetchProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	t := s.state.Begin(store.FamilyDetail)

	p, err := s.api.GetProject(ctx, id)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, readCopy))
		return nil, fmt.Errorf("project.FetchProjectByID: %w", err)
	}

	if err := s.state.DetailLoaded(ctx, t, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// FetchProjectChat loads the chat room record of a project.
func (s *Service) FetchProjectChat(ctx context.Context, projectID int64) (*domain.Chat, error) {
	t := s.state.Begin(store.FamilyChat)

	chat, err := s.api.GetProjectChat(ctx, projectID)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, readCopy))
		return nil, fmt.Errorf("project.FetchProjectChat: %w", err)
	}

	if err := s.state.ChatLoaded(ctx, t, *chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// CreateProject creates a project and appends it to the list.
func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, s.reject(ctx, err)
	}

	t := s.state.BeginWrite(store.FamilyWrite)

	p, msg, err := s.api.CreateProject(ctx, input.request())
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, createCopy))
		return nil, fmt.Errorf("project.CreateProject: %w", err)
	}

	if err := s.state.Created(ctx, t, *p); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created", slog.Int64("project_id", p.ID))
	s.notify.Success(ctx, cmp.Or(msg, msgCreated))
	return p, nil
}

// UpdateProject replaces a project with the server's updated record.
func (s *Service) UpdateProject(ctx context.Context, id int64, input ProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, s.reject(ctx, err)
	}

	t := s.state.BeginWrite(store.FamilyWrite)

	p, msg, err := s.api.UpdateProject(ctx, id, input.request())
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, updateCopy))
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}
	if p.ID == 0 {
		p.ID = id
	}

	if err := s.state.Updated(ctx, t, *p); err != nil {
		return nil, err
	}

	s.notify.Success(ctx, cmp.Or(msg, msgUpdated))
	return p, nil
}

// DeleteProject deletes a project. It is removed locally only after the
// server confirmed.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	t := s.state.BeginWrite(store.FamilyWrite)

	msg, err := s.api.DeleteProject(ctx, id)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, deleteCopy))
		return fmt.Errorf("project.DeleteProject: %w", err)
	}

	if err := s.state.Deleted(ctx, t, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted", slog.Int64("project_id", id))
	s.notify.Success(ctx, cmp.Or(msg, msgDeleted))
	return nil
}

func (s *Service) reject(ctx context.Context, err error) error {
	msg := domain.Describe(err, domain.StatusCopy{})
	s.state.Reject(store.FamilyWrite, msg)
	s.notify.Error(ctx, msg)
	return err
}

func (s *Service) fail(ctx context.Context, t store.Ticket, msg string) {
	if s.state.Fail(ctx, t, msg) == nil {
		s.notify.Error(ctx, msg)
	}
}
