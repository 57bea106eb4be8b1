package project

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

const (
	projectsRoute = "/projects"
	projectRoute  = "/project/"
)

// InviteToProject emails an invitation and returns the server's message.
func (s *Service) InviteToProject(ctx context.Context, input InviteInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", s.reject(ctx, err)
	}

	t := s.state.BeginWrite(store.FamilyWrite)

	msg, err := s.api.InviteToProject(ctx, strings.TrimSpace(input.Email), input.ProjectID)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, readCopy))
		return "", fmt.Errorf("project.InviteToProject: %w", err)
	}

	if err := s.state.Commit(ctx, t, nil); err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "invitation sent", slog.Int64("project_id", input.ProjectID))
	return msg, nil
}

// AcceptInvitation redeems an invitation token and navigates to the
// project it grants access to, or to the project list when the server did
// not say which one. Failures are returned to the caller.
func (s *Service) AcceptInvitation(ctx context.Context, token string) (*domain.Invitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, s.reject(ctx, domain.NewValidationError("token", "Invitation token is required"))
	}

	t := s.state.BeginWrite(store.FamilyWrite)

	inv, err := s.api.AcceptInvitation(ctx, token)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, readCopy))
		return nil, fmt.Errorf("project.AcceptInvitation: %w", err)
	}

	if err := s.state.Commit(ctx, t, nil); err != nil {
		return nil, err
	}

	if inv.ProjectID != 0 {
		s.nav.Navigate(ctx, projectRoute+strconv.FormatInt(inv.ProjectID, 10))
	} else {
		s.nav.Navigate(ctx, projectsRoute)
	}
	return inv, nil
}
