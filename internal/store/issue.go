package store

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Issue request families.
const (
	FamilyIssues     = "list"
	FamilyIssue      = "detail"
	FamilyIssueWrite = "write"
)

// IssueState is the issue slice. Issues belong to ProjectID.
type IssueState struct {
	ProjectID int64          `json:"projectId,omitempty"`
	Issues    []domain.Issue `json:"issues"`
	Current   *domain.Issue  `json:"issueDetails,omitempty"`
	// Unconfirmed holds ids appended locally after a create and not yet
	// seen in a refetched list.
	Unconfirmed []int64 `json:"unconfirmed,omitempty"`
	Status
}

// Issues owns the issue slice.
type Issues struct {
	*Slice[IssueState]
}

// NewIssues creates an empty issue store.
func NewIssues(logger *slog.Logger) *Issues {
	return &Issues{Slice: NewSlice("issues",
		func() IssueState { return IssueState{Issues: []domain.Issue{}} },
		cloneIssues,
		func(st *IssueState, _ string) *Status { return &st.Status },
		logger,
	)}
}

func cloneIssues(s IssueState) IssueState {
	list := make([]domain.Issue, len(s.Issues))
	for i, is := range s.Issues {
		list[i] = is.Clone()
	}
	s.Issues = list
	if s.Current != nil {
		c := s.Current.Clone()
		s.Current = &c
	}
	s.Unconfirmed = slices.Clone(s.Unconfirmed)
	return s
}

// ListLoaded replaces the list with the server's view of projectID. Any
// local overlay is discarded.
func (i *Issues) ListLoaded(ctx context.Context, t Ticket, projectID int64, list []domain.Issue) error {
	return i.Commit(ctx, t, func(st *IssueState) {
		st.ProjectID = projectID
		st.Issues = list
		st.Unconfirmed = nil
	})
}

// DetailLoaded sets the current issue.
func (i *Issues) DetailLoaded(ctx context.Context, t Ticket, is domain.Issue) error {
	return i.Commit(ctx, t, func(st *IssueState) { st.Current = &is })
}

// Created makes a freshly created issue current and overlays it on the list
// until the next refetch. Issues of another project are not listed.
func (i *Issues) Created(ctx context.Context, t Ticket, is domain.Issue) error {
	return i.Commit(ctx, t, func(st *IssueState) {
		c := is
		st.Current = &c
		if st.ProjectID != 0 && is.ProjectID != 0 && st.ProjectID != is.ProjectID {
			return
		}
		if slices.ContainsFunc(st.Issues, func(x domain.Issue) bool { return x.ID == is.ID }) {
			return
		}
		st.Issues = append(st.Issues, is)
		st.Unconfirmed = append(st.Unconfirmed, is.ID)
	})
}

// Replaced swaps the issue wherever it is shown.
func (i *Issues) Replaced(ctx context.Context, t Ticket, is domain.Issue) error {
	return i.Commit(ctx, t, func(st *IssueState) {
		for k := range st.Issues {
			if st.Issues[k].ID == is.ID {
				st.Issues[k] = is
			}
		}
		if st.Current != nil && st.Current.ID == is.ID {
			c := is
			st.Current = &c
		}
	})
}

// Deleted removes the issue.
func (i *Issues) Deleted(ctx context.Context, t Ticket, id int64) error {
	return i.Commit(ctx, t, func(st *IssueState) {
		st.Issues = slices.DeleteFunc(st.Issues, func(x domain.Issue) bool { return x.ID == id })
		st.Unconfirmed = slices.DeleteFunc(st.Unconfirmed, func(x int64) bool { return x == id })
		if st.Current != nil && st.Current.ID == id {
			st.Current = nil
		}
	})
}
