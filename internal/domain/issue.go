package domain

// Issue is a client-side projection of a server issue.
type Issue struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      IssueStatus `json:"status"`
	Priority    string      `json:"priority,omitempty"`
	DueDate     string      `json:"dueDate,omitempty"`
	ProjectID   int64       `json:"projectId,omitempty"`
	Assignee    *User       `json:"assignee,omitempty"`
}

// Clone returns a deep copy of i.
func (i Issue) Clone() Issue {
	c := i
	if i.Assignee != nil {
		a := *i.Assignee
		c.Assignee = &a
	}
	return c
}

// GroupByStatus splits issues into board columns, preserving order inside
// each column. Every known status has an entry, possibly empty.
func GroupByStatus(issues []Issue) map[IssueStatus][]Issue {
	out := make(map[IssueStatus][]Issue, len(IssueStatuses))
	for _, s := range IssueStatuses {
		out[s] = []Issue{}
	}
	for _, is := range issues {
		out[is.Status] = append(out[is.Status], is)
	}
	return out
}
