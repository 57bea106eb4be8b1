package api

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ProjectRequest is the body of project create and update calls.
type ProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type inviteRequest struct {
	Email     string `json:"email"`
	ProjectID int64  `json:"projectId"`
}

// IssueRequest is the body of POST /api/issues.
type IssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   int64  `json:"projectId"`
	Status      string `json:"status"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// CommentRequest is the body of POST /api/comments.
type CommentRequest struct {
	Content string `json:"content"`
	IssueID int64  `json:"issueId"`
}

// MessageRequest is the body of POST /api/messages/send.
type MessageRequest struct {
	SenderID  int64  `json:"senderId"`
	ProjectID int64  `json:"projectId"`
	Content   string `json:"content"`
}
