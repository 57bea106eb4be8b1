package domain

import "net/url"

// FilterAll is the sentinel filter value meaning "no filter".
const FilterAll = "all"

// Project is a client-side projection of a server project.
type Project struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Owner       *User    `json:"owner,omitempty"`
	Team        []User   `json:"team,omitempty"`
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	c := p
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Team != nil {
		c.Team = append([]User(nil), p.Team...)
	}
	if p.Owner != nil {
		o := *p.Owner
		c.Owner = &o
	}
	return c
}

// ProjectFilters narrows the project listing.
type ProjectFilters struct {
	Category string
	Tag      string
}

// Query returns the outgoing query. A filter equal to FilterAll, or empty,
// is omitted entirely.
func (f ProjectFilters) Query() url.Values {
	q := url.Values{}
	if f.Category != "" && f.Category != FilterAll {
		q.Set("category", f.Category)
	}
	if f.Tag != "" && f.Tag != FilterAll {
		q.Set("tag", f.Tag)
	}
	return q
}

// Invitation is the payload of an accepted project invitation.
type Invitation struct {
	ProjectID int64  `json:"projectId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Chat is the chat room attached to a project.
type Chat struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Users []User `json:"users,omitempty"`
}
