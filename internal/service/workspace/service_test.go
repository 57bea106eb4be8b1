package workspace

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockLoaders struct {
	FetchProjectByIDFunc func(ctx context.Context, id int64) (*domain.Project, error)
	FetchIssuesFunc      func(ctx context.Context, projectID int64) ([]domain.Issue, error)
	FetchMessagesFunc    func(ctx context.Context, projectID int64) ([]domain.Message, error)
}

func (m *mockLoaders) FetchProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	return m.FetchProjectByIDFunc(ctx, id)
}

func (m *mockLoaders) FetchIssues(ctx context.Context, projectID int64) ([]domain.Issue, error) {
	return m.FetchIssuesFunc(ctx, projectID)
}

func (m *mockLoaders) FetchMessages(ctx context.Context, projectID int64) ([]domain.Message, error) {
	return m.FetchMessagesFunc(ctx, projectID)
}

func newTestService(m *mockLoaders) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), m, m, m)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestService_Open(t *testing.T) {
	t.Parallel()

	m := &mockLoaders{
		FetchProjectByIDFunc: func(ctx context.Context, id int64) (*domain.Project, error) {
			return &domain.Project{ID: id, Name: "board"}, nil
		},
		FetchIssuesFunc: func(ctx context.Context, projectID int64) ([]domain.Issue, error) {
			return []domain.Issue{{ID: 1, ProjectID: projectID}}, nil
		},
		FetchMessagesFunc: func(ctx context.Context, projectID int64) ([]domain.Message, error) {
			return []domain.Message{{ID: 1}, {ID: 2}}, nil
		},
	}

	v, err := newTestService(m).Open(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "board", v.Project.Name)
	assert.Len(t, v.Issues, 1)
	assert.Len(t, v.Messages, 2)
}

func TestService_Open_FirstErrorCancelsSiblings(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m := &mockLoaders{
		FetchProjectByIDFunc: func(ctx context.Context, id int64) (*domain.Project, error) {
			return nil, boom
		},
		FetchIssuesFunc: func(ctx context.Context, projectID int64) ([]domain.Issue, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return nil, errors.New("not cancelled")
			}
		},
		FetchMessagesFunc: func(ctx context.Context, projectID int64) ([]domain.Message, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	_, err := newTestService(m).Open(context.Background(), 5)
	require.ErrorIs(t, err, boom)
}

func TestService_Open_RequiresProject(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&mockLoaders{}).Open(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrValidation)
}
