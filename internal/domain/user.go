package domain

// User is the profile returned by /api/users/profile and embedded in
// project teams, comments and chat messages.
type User struct {
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	ProjectSize int    `json:"projectSize,omitempty"`
}

// Identity returns the user's numeric id. Some endpoints send it as "userId",
// others as "id".
func (u User) Identity() int64 {
	if u.UserID != 0 {
		return u.UserID
	}
	return u.ID
}

// DisplayName returns the best human-readable name available.
func (u User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	}
	return u.Email
}

// AuthResult is the payload of a successful signup or login.
type AuthResult struct {
	Token   string `json:"jwt"`
	Message string `json:"message,omitempty"`
}
