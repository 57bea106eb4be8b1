package domain

// Comment belongs to exactly one issue.
type Comment struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	IssueID   int64  `json:"issueId,omitempty"`
	User      *User  `json:"user,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Author returns the display name of the comment's author, if known.
func (c Comment) Author() string {
	if c.User == nil {
		return ""
	}
	return c.User.DisplayName()
}
