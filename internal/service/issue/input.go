package issue

import (
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// CreateIssueInput holds parameters for creating an issue.
type CreateIssueInput struct {
	Title       string
	Description string
	ProjectID   int64
	Status      domain.IssueStatus // defaults to pending
	Priority    string
	DueDate     string // YYYY-MM-DD
}

// Validate validates the create input.
func (i CreateIssueInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Issue title is required"})
	}
	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "Project ID is required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "Invalid issue status"})
	}
	if i.DueDate != "" {
		if _, err := domain.ParseDate(i.DueDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "due_date", Message: "Invalid due date"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateIssueInput) request() api.IssueRequest {
	status := i.Status
	if status == "" {
		status = domain.IssueStatusPending
	}
	return api.IssueRequest{
		Title:       strings.TrimSpace(i.Title),
		Description: strings.TrimSpace(i.Description),
		ProjectID:   i.ProjectID,
		Status:      status.String(),
		Priority:    strings.ToLower(strings.TrimSpace(i.Priority)),
		DueDate:     i.DueDate,
	}
}
