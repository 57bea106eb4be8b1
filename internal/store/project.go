package store

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Project request families.
const (
	FamilyProjects = "list"
	FamilySearch   = "search"
	FamilyDetail   = "detail"
	FamilyChat     = "chat"
	FamilyWrite    = "write"
)

// ProjectState is the project slice.
type ProjectState struct {
	Projects      []domain.Project `json:"projects"`
	SearchResults []domain.Project `json:"searchProjects"`
	Current       *domain.Project  `json:"projectDetails,omitempty"`
	Chat          *domain.Chat     `json:"chat,omitempty"`
	Status
}

// Projects owns the project slice.
type Projects struct {
	*Slice[ProjectState]
}

// NewProjects creates an empty project store.
func NewProjects(logger *slog.Logger) *Projects {
	slice := NewSlice("projects", newProjectState, cloneProjects,
		func(st *ProjectState, _ string) *Status { return &st.Status },
		logger,
	)
	return &Projects{Slice: slice}
}

func newProjectState() ProjectState {
	return ProjectState{Projects: []domain.Project{}, SearchResults: []domain.Project{}}
}

func cloneProjects(s ProjectState) ProjectState {
	s.Projects = cloneProjectList(s.Projects)
	s.SearchResults = cloneProjectList(s.SearchResults)
	if s.Current != nil {
		c := s.Current.Clone()
		s.Current = &c
	}
	if s.Chat != nil {
		c := *s.Chat
		c.Users = slices.Clone(c.Users)
		s.Chat = &c
	}
	return s
}

func cloneProjectList(in []domain.Project) []domain.Project {
	out := make([]domain.Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// ListLoaded replaces the project list.
func (p *Projects) ListLoaded(ctx context.Context, t Ticket, list []domain.Project) error {
	return p.Commit(ctx, t, func(st *ProjectState) { st.Projects = list })
}

// SearchLoaded replaces the search results.
func (p *Projects) SearchLoaded(ctx context.Context, t Ticket, list []domain.Project) error {
	return p.Commit(ctx, t, func(st *ProjectState) { st.SearchResults = list })
}

// DetailLoaded sets the current project.
func (p *Projects) DetailLoaded(ctx context.Context, t Ticket, proj domain.Project) error {
	return p.Commit(ctx, t, func(st *ProjectState) { st.Current = &proj })
}

// ChatLoaded sets the chat record of the current project.
func (p *Projects) ChatLoaded(ctx context.Context, t Ticket, chat domain.Chat) error {
	return p.Commit(ctx, t, func(st *ProjectState) { st.Chat = &chat })
}

// Created appends a new project to the list.
func (p *Projects) Created(ctx context.Context, t Ticket, proj domain.Project) error {
	return p.Commit(ctx, t, func(st *ProjectState) { st.Projects = append(st.Projects, proj) })
}

// Updated replaces the project in the list and, when it is the current
// project, the detail view.
func (p *Projects) Updated(ctx context.Context, t Ticket, proj domain.Project) error {
	return p.Commit(ctx, t, func(st *ProjectState) {
		for i := range st.Projects {
			if st.Projects[i].ID == proj.ID {
				st.Projects[i] = proj
			}
		}
		if st.Current != nil && st.Current.ID == proj.ID {
			c := proj
			st.Current = &c
		}
	})
}

// Deleted removes the project everywhere it is shown.
func (p *Projects) Deleted(ctx context.Context, t Ticket, id int64) error {
	return p.Commit(ctx, t, func(st *ProjectState) {
		drop := func(pr domain.Project) bool { return pr.ID == id }
		st.Projects = slices.DeleteFunc(st.Projects, drop)
		st.SearchResults = slices.DeleteFunc(st.SearchResults, drop)
		if st.Current != nil && st.Current.ID == id {
			st.Current = nil
			st.Chat = nil
		}
	})
}
