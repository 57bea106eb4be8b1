package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
	"github.com/Achamanp/ProjectManagentApp/internal/task"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockProjectAPI struct {
	ListProjectsFunc     func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error)
	SearchProjectsFunc   func(ctx context.Context, keyword string) ([]domain.Project, error)
	GetProjectFunc       func(ctx context.Context, id int64) (*domain.Project, error)
	CreateProjectFunc    func(ctx context.Context, in api.ProjectRequest) (*domain.Project, string, error)
	UpdateProjectFunc    func(ctx context.Context, id int64, in api.ProjectRequest) (*domain.Project, string, error)
	DeleteProjectFunc    func(ctx context.Context, id int64) (string, error)
	GetProjectChatFunc   func(ctx context.Context, projectID int64) (*domain.Chat, error)
	InviteToProjectFunc  func(ctx context.Context, email string, projectID int64) (string, error)
	AcceptInvitationFunc func(ctx context.Context, token string) (*domain.Invitation, error)
}

func (m *mockProjectAPI) ListProjects(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
	return m.ListProjectsFunc(ctx, filters)
}

func (m *mockProjectAPI) SearchProjects(ctx context.Context, keyword string) ([]domain.Project, error) {
	return m.SearchProjectsFunc(ctx, keyword)
}

func (m *mockProjectAPI) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return m.GetProjectFunc(ctx, id)
}

func (m *mockProjectAPI) CreateProject(ctx context.Context, in api.ProjectRequest) (*domain.Project, string, error) {
	return m.CreateProjectFunc(ctx, in)
}

func (m *mockProjectAPI) UpdateProject(ctx context.Context, id int64, in api.ProjectRequest) (*domain.Project, string, error) {
	return m.UpdateProjectFunc(ctx, id, in)
}

func (m *mockProjectAPI) DeleteProject(ctx context.Context, id int64) (string, error) {
	return m.DeleteProjectFunc(ctx, id)
}

func (m *mockProjectAPI) GetProjectChat(ctx context.Context, projectID int64) (*domain.Chat, error) {
	return m.GetProjectChatFunc(ctx, projectID)
}

func (m *mockProjectAPI) InviteToProject(ctx context.Context, email string, projectID int64) (string, error) {
	return m.InviteToProjectFunc(ctx, email, projectID)
}

func (m *mockProjectAPI) AcceptInvitation(ctx context.Context, token string) (*domain.Invitation, error) {
	return m.AcceptInvitationFunc(ctx, token)
}

type recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	routes    []string
}

func (r *recorder) Success(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *recorder) Error(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *recorder) Navigate(_ context.Context, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, url)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestService(m *mockProjectAPI) (*Service, *recorder) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := &recorder{}
	return NewService(logger, m, store.NewProjects(logger), rec, rec), rec
}

// ---------------------------------------------------------------------------
// FetchProjects
// ---------------------------------------------------------------------------

func TestService_FetchProjects_PassesFilters(t *testing.T) {
	t.Parallel()

	var got domain.ProjectFilters
	m := &mockProjectAPI{
		ListProjectsFunc: func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
			got = filters
			return []domain.Project{{ID: 1, Name: "a"}}, nil
		},
	}
	svc, _ := newTestService(m)

	list, err := svc.FetchProjects(context.Background(), domain.ProjectFilters{Category: "all", Tag: "react"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "react", got.Query().Get("tag"))
	assert.False(t, got.Query().Has("category"))

	st := svc.State()
	assert.Len(t, st.Projects, 1)
	assert.False(t, st.Loading)
}

func TestService_FetchProjects_FailureIsQuiet(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		ListProjectsFunc: func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
			return nil, &domain.APIError{Kind: domain.KindServer, Status: 500, Message: "db down"}
		},
	}
	svc, rec := newTestService(m)

	_, err := svc.FetchProjects(context.Background(), domain.ProjectFilters{})
	require.Error(t, err)
	assert.Equal(t, "db down", svc.State().Error)
	assert.Empty(t, rec.errors)
}

// Two fetches dispatched A then B, with B answering first: B's payload is
// kept and A's late answer is dropped.
func TestService_FetchProjects_OutOfOrderResponses(t *testing.T) {
	t.Parallel()

	releaseA := make(chan struct{})
	aStarted := make(chan struct{})
	m := &mockProjectAPI{
		ListProjectsFunc: func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
			if filters.Category == "A" {
				close(aStarted)
				<-releaseA
				return []domain.Project{{ID: 1, Name: "from A"}}, nil
			}
			return []domain.Project{{ID: 2, Name: "from B"}}, nil
		},
	}
	svc, _ := newTestService(m)
	ctx := context.Background()

	a := task.Go(ctx, func(ctx context.Context) ([]domain.Project, error) {
		return svc.FetchProjects(ctx, domain.ProjectFilters{Category: "A"})
	})
	<-aStarted

	_, err := svc.FetchProjects(ctx, domain.ProjectFilters{Category: "B"})
	require.NoError(t, err)

	close(releaseA)
	_, errA := a.Wait()
	assert.ErrorIs(t, errA, domain.ErrStale)

	st := svc.State()
	require.Len(t, st.Projects, 1)
	assert.Equal(t, "from B", st.Projects[0].Name)
	assert.False(t, st.Loading)
}

func TestService_FetchProjects_CancelledHandleDoesNotCommit(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	m := &mockProjectAPI{
		ListProjectsFunc: func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
			close(started)
			<-release
			return []domain.Project{{ID: 1}}, nil
		},
	}
	svc, _ := newTestService(m)

	h := task.Go(context.Background(), func(ctx context.Context) ([]domain.Project, error) {
		return svc.FetchProjects(ctx, domain.ProjectFilters{})
	})
	<-started
	h.Cancel()
	close(release)

	_, err := h.Wait()
	assert.ErrorIs(t, err, domain.ErrStale)

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("handle did not finish")
	}
	st := svc.State()
	assert.Empty(t, st.Projects)
	assert.False(t, st.Loading)
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestService_SearchProjects(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		SearchProjectsFunc: func(ctx context.Context, keyword string) ([]domain.Project, error) {
			assert.Equal(t, "go api", keyword)
			return []domain.Project{{ID: 3}}, nil
		},
	}
	svc, _ := newTestService(m)

	_, err := svc.SearchProjects(context.Background(), "  go   api ")
	require.NoError(t, err)
	st := svc.State()
	assert.Len(t, st.SearchResults, 1)
	assert.Empty(t, st.Projects, "search must not touch the filtered list")

	_, err = svc.SearchProjects(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, svc.State().SearchResults)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

func TestService_CreateProject(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		CreateProjectFunc: func(ctx context.Context, in api.ProjectRequest) (*domain.Project, string, error) {
			assert.Equal(t, []string{"springboot", "react"}, in.Tags)
			assert.Equal(t, "fullstack", in.Category)
			return &domain.Project{ID: 10, Name: in.Name, Tags: in.Tags}, "", nil
		},
	}
	svc, rec := newTestService(m)

	p, err := svc.CreateProject(context.Background(), ProjectInput{
		Name:     "Board",
		Category: "Fullstack",
		Tags:     []string{"Spring Boot", "React", "react"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.ID)
	assert.Len(t, svc.State().Projects, 1)
	assert.Equal(t, []string{msgCreated}, rec.successes)
}

func TestService_CreateProject_Validation(t *testing.T) {
	t.Parallel()

	svc, rec := newTestService(&mockProjectAPI{})

	_, err := svc.CreateProject(context.Background(), ProjectInput{Category: "x"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Project name is required"}, rec.errors)
	assert.False(t, svc.State().Loading)
}

func TestService_CreateProject_Failure(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		CreateProjectFunc: func(ctx context.Context, in api.ProjectRequest) (*domain.Project, string, error) {
			return nil, "", errors.New("unexpected")
		},
	}
	svc, rec := newTestService(m)

	_, err := svc.CreateProject(context.Background(), ProjectInput{Name: "n", Category: "c"})
	require.Error(t, err)
	assert.Equal(t, []string{"Failed to create project"}, rec.errors)
}

func TestService_UpdateProject_ReplacesEverywhere(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		ListProjectsFunc: func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
			return []domain.Project{{ID: 1, Name: "old"}}, nil
		},
		GetProjectFunc: func(ctx context.Context, id int64) (*domain.Project, error) {
			return &domain.Project{ID: id, Name: "old"}, nil
		},
		UpdateProjectFunc: func(ctx context.Context, id int64, in api.ProjectRequest) (*domain.Project, string, error) {
			return &domain.Project{Name: in.Name}, "Project saved", nil
		},
	}
	svc, rec := newTestService(m)
	ctx := context.Background()

	_, err := svc.FetchProjects(ctx, domain.ProjectFilters{})
	require.NoError(t, err)
	_, err = svc.FetchProjectByID(ctx, 1)
	require.NoError(t, err)

	_, err = svc.UpdateProject(ctx, 1, ProjectInput{Name: "new", Category: "c"})
	require.NoError(t, err)

	st := svc.State()
	assert.Equal(t, "new", st.Projects[0].Name)
	assert.Equal(t, "new", st.Current.Name)
	assert.Equal(t, []string{"Project saved"}, rec.successes, "server message wins over the default")
}

func TestService_DeleteProject_OnlyAfterConfirmation(t *testing.T) {
	t.Parallel()

	fail := true
	m := &mockProjectAPI{
		ListProjectsFunc: func(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
			return []domain.Project{{ID: 1}, {ID: 2}}, nil
		},
		DeleteProjectFunc: func(ctx context.Context, id int64) (string, error) {
			if fail {
				return "", &domain.APIError{Kind: domain.KindServer, Status: 403}
			}
			return "", nil
		},
	}
	svc, rec := newTestService(m)
	ctx := context.Background()
	_, _ = svc.FetchProjects(ctx, domain.ProjectFilters{})

	require.Error(t, svc.DeleteProject(ctx, 1))
	assert.Len(t, svc.State().Projects, 2)
	assert.Equal(t, []string{"Server error (403)"}, rec.errors)

	fail = false
	require.NoError(t, svc.DeleteProject(ctx, 1))
	st := svc.State()
	require.Len(t, st.Projects, 1)
	assert.Equal(t, int64(2), st.Projects[0].ID)
	assert.Equal(t, []string{msgDeleted}, rec.successes)
}

// ---------------------------------------------------------------------------
// Invitations / chat
// ---------------------------------------------------------------------------

func TestService_AcceptInvitation_Navigates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		inv   *domain.Invitation
		route string
	}{
		{name: "with project", inv: &domain.Invitation{ProjectID: 7}, route: "/project/7"},
		{name: "without project", inv: &domain.Invitation{}, route: "/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &mockProjectAPI{
				AcceptInvitationFunc: func(ctx context.Context, token string) (*domain.Invitation, error) {
					return tt.inv, nil
				},
			}
			svc, rec := newTestService(m)

			_, err := svc.AcceptInvitation(context.Background(), "tok")
			require.NoError(t, err)
			assert.Equal(t, []string{tt.route}, rec.routes)
		})
	}
}

func TestService_AcceptInvitation_ReturnsError(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		AcceptInvitationFunc: func(ctx context.Context, token string) (*domain.Invitation, error) {
			return nil, &domain.APIError{Kind: domain.KindServer, Status: 400, Message: "Invalid invitation"}
		},
	}
	svc, rec := newTestService(m)

	_, err := svc.AcceptInvitation(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "Invalid invitation", svc.State().Error)
	assert.Empty(t, rec.routes)
}

func TestService_InviteToProject_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(&mockProjectAPI{})

	_, err := svc.InviteToProject(context.Background(), InviteInput{Email: "not-an-email", ProjectID: 1})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid email address", verr.First())
}

func TestService_FetchProjectChat(t *testing.T) {
	t.Parallel()

	m := &mockProjectAPI{
		GetProjectChatFunc: func(ctx context.Context, projectID int64) (*domain.Chat, error) {
			return &domain.Chat{ID: 5, Name: "general"}, nil
		},
	}
	svc, _ := newTestService(m)

	_, err := svc.FetchProjectChat(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, svc.State().Chat)
	assert.Equal(t, int64(5), svc.State().Chat.ID)
}
