package project

import (
	"net/mail"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ProjectInput holds the editable fields of a project.
type ProjectInput struct {
	Name        string
	Description string
	Category    string
	Tags        []string
}

// Validate validates the project input.
func (i ProjectInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Project name is required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Project name is too long"})
	}
	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "Category is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ProjectInput) request() api.ProjectRequest {
	return api.ProjectRequest{
		Name:        strings.TrimSpace(i.Name),
		Description: strings.TrimSpace(i.Description),
		Category:    strings.ToLower(strings.TrimSpace(i.Category)),
		Tags:        domain.NormalizeTags(i.Tags),
	}
}

// InviteInput holds parameters for inviting a user to a project.
type InviteInput struct {
	Email     string
	ProjectID int64
}

// Validate validates the invite input.
func (i InviteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	} else if _, err := mail.ParseAddress(strings.TrimSpace(i.Email)); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email address"})
	}
	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "Project ID is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
