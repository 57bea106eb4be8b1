package issue

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// FetchIssues loads the issues of a project. It is the only path that
// populates the list; any local overlay is discarded.
func (s *Service) FetchIssues(ctx context.Context, projectID int64) ([]domain.Issue, error) {
	t := s.state.Begin(store.FamilyIssues)

	list, err := s.api.ListIssues(ctx, projectID)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, listCopy))
		return nil, fmt.Errorf("issue.FetchIssues: %w", err)
	}

	if err := s.state.ListLoaded(ctx, t, projectID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// FetchIssueByID loads one issue into the detail view.
func (s *Service) FetchIssueByID(ctx context.Context, id int64) (*domain.Issue, error) {
	t := s.state.Begin(store.FamilyIssue)

	is, err := s.api.GetIssue(ctx, id)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, getCopy))
		return nil, fmt.Errorf("issue.FetchIssueByID: %w", err)
	}

	if err := s.state.DetailLoaded(ctx, t, *is); err != nil {
		return nil, err
	}
	return is, nil
}

// CreateIssue creates an issue. The result becomes the current issue and
// stays visible in the list until the next FetchIssues for its project.
func (s *Service) CreateIssue(ctx context.Context, input CreateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, s.reject(ctx, err)
	}

	req := input.request()
	t := s.state.BeginWrite(store.FamilyIssueWrite)

	is, msg, err := s.api.CreateIssue(ctx, req)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, createCopy))
		return nil, fmt.Errorf("issue.CreateIssue: %w", err)
	}
	if is.ProjectID == 0 {
		is.ProjectID = req.ProjectID
	}
	if is.Status == "" {
		is.Status = domain.IssueStatus(req.Status)
	}

	if err := s.state.Created(ctx, t, *is); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "issue created",
		slog.Int64("issue_id", is.ID),
		slog.Int64("project_id", is.ProjectID))
	s.notify.Success(ctx, cmp.Or(msg, "Issue created successfully!"))
	return is, nil
}

// UpdateIssueStatus moves an issue to status.
func (s *Service) UpdateIssueStatus(ctx context.Context, id int64, status domain.IssueStatus) (*domain.Issue, error) {
	if !status.IsValid() {
		return nil, s.reject(ctx, domain.NewValidationError("status", "Invalid issue status"))
	}

	t := s.state.BeginWrite(store.FamilyIssueWrite)

	is, msg, err := s.api.UpdateIssueStatus(ctx, id, status)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, statusCopy))
		return nil, fmt.Errorf("issue.UpdateIssueStatus: %w", err)
	}
	if is.ID == 0 {
		is.ID = id
	}

	if err := s.state.Replaced(ctx, t, *is); err != nil {
		return nil, err
	}

	s.notify.Success(ctx, cmp.Or(msg, fmt.Sprintf("Issue status updated to %s!", status)))
	return is, nil
}

// AssignIssue assigns an issue to a user.
func (s *Service) AssignIssue(ctx context.Context, issueID, userID int64) (*domain.Issue, error) {
	if issueID <= 0 || userID <= 0 {
		return nil, s.reject(ctx, domain.NewValidationError("assignee", "Issue ID and User ID are required"))
	}

	t := s.state.BeginWrite(store.FamilyIssueWrite)

	is, msg, err := s.api.AssignIssue(ctx, issueID, userID)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, assignCopy))
		return nil, fmt.Errorf("issue.AssignIssue: %w", err)
	}
	if is.ID == 0 {
		is.ID = issueID
	}

	if err := s.state.Replaced(ctx, t, *is); err != nil {
		return nil, err
	}

	s.notify.Success(ctx, cmp.Or(msg, "Issue assigned successfully!"))
	return is, nil
}

// DeleteIssue deletes an issue and refetches the issues of the project
// currently loaded.
func (s *Service) DeleteIssue(ctx context.Context, id int64) error {
	t := s.state.BeginWrite(store.FamilyIssueWrite)

	msg, err := s.api.DeleteIssue(ctx, id)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, deleteCopy))
		return fmt.Errorf("issue.DeleteIssue: %w", err)
	}

	if err := s.state.Deleted(ctx, t, id); err != nil {
		return err
	}
	s.notify.Success(ctx, cmp.Or(msg, "Issue deleted successfully!"))

	if projectID := s.state.Snapshot().ProjectID; projectID != 0 {
		if _, err := s.FetchIssues(ctx, projectID); err != nil {
			s.log.WarnContext(ctx, "refetch after delete failed", slog.String("error", err.Error()))
		}
	}
	return nil
}
