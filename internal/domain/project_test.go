package domain

import (
	"testing"
)

func TestProjectFilters_Query_OmitsAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters ProjectFilters
		want    string
	}{
		{"both all", ProjectFilters{Category: "all", Tag: "all"}, ""},
		{"zero value", ProjectFilters{}, ""},
		{"category only", ProjectFilters{Category: "fullstack", Tag: "all"}, "category=fullstack"},
		{"tag only", ProjectFilters{Category: "all", Tag: "react"}, "tag=react"},
		{"both", ProjectFilters{Category: "backend", Tag: "springboot"}, "category=backend&tag=springboot"},
		{"case sensitive sentinel", ProjectFilters{Category: "All"}, "category=All"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filters.Query().Encode(); got != tt.want {
				t.Errorf("Query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProject_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	p := Project{ID: 1, Tags: []string{"react"}, Team: []User{{ID: 2}}, Owner: &User{ID: 3}}
	c := p.Clone()
	c.Tags[0] = "vue"
	c.Team[0].ID = 9
	c.Owner.ID = 9

	if p.Tags[0] != "react" || p.Team[0].ID != 2 || p.Owner.ID != 3 {
		t.Errorf("Clone shares memory with original: %+v", p)
	}
}

func TestGroupByStatus(t *testing.T) {
	t.Parallel()

	issues := []Issue{
		{ID: 1, Status: IssueStatusPending},
		{ID: 2, Status: IssueStatusDone},
		{ID: 3, Status: IssueStatusPending},
	}
	g := GroupByStatus(issues)

	if len(g[IssueStatusPending]) != 2 || g[IssueStatusPending][0].ID != 1 || g[IssueStatusPending][1].ID != 3 {
		t.Errorf("pending column = %+v", g[IssueStatusPending])
	}
	if got, ok := g[IssueStatusInProgress]; !ok || len(got) != 0 {
		t.Errorf("in-progress column should exist and be empty, got %+v", got)
	}
	if len(g[IssueStatusDone]) != 1 {
		t.Errorf("done column = %+v", g[IssueStatusDone])
	}
}

func TestUser_IdentityAndName(t *testing.T) {
	t.Parallel()

	if got := (User{ID: 4, UserID: 7}).Identity(); got != 7 {
		t.Errorf("Identity() = %d, want 7", got)
	}
	if got := (User{ID: 4}).Identity(); got != 4 {
		t.Errorf("Identity() = %d, want 4", got)
	}
	if got := (User{Username: "ana", Email: "a@x"}).DisplayName(); got != "ana" {
		t.Errorf("DisplayName() = %q", got)
	}
	m := Message{Sender: &User{UserID: 5, FullName: "Ana Lee"}}
	if m.From() != 5 || m.FromName() != "Ana Lee" {
		t.Errorf("message sender = %d %q", m.From(), m.FromName())
	}
}
