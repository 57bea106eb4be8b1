package store

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Chat request families.
const (
	FamilyMessages = "messages"
	FamilySend     = "send"
)

// ChatState is the chat slice of the project currently open.
type ChatState struct {
	ProjectID int64            `json:"projectId,omitempty"`
	Messages  []domain.Message `json:"messages"`
	Status
	Sending Status `json:"sending"`
}

// Chat owns the chat slice.
type Chat struct {
	*Slice[ChatState]
}

// NewChat creates an empty chat store.
func NewChat(logger *slog.Logger) *Chat {
	return &Chat{Slice: NewSlice("chat",
		func() ChatState { return ChatState{Messages: []domain.Message{}} },
		func(s ChatState) ChatState {
			s.Messages = slices.Clone(s.Messages)
			return s
		},
		func(st *ChatState, family string) *Status {
			if family == FamilySend {
				return &st.Sending
			}
			return &st.Status
		},
		logger,
	)}
}

// MessagesLoaded replaces the history with the messages of projectID.
func (c *Chat) MessagesLoaded(ctx context.Context, t Ticket, projectID int64, list []domain.Message) error {
	return c.Commit(ctx, t, func(st *ChatState) {
		st.ProjectID = projectID
		st.Messages = list
	})
}

// Sent appends msg when it belongs to the open project and is not already
// present.
func (c *Chat) Sent(ctx context.Context, t Ticket, msg domain.Message) error {
	return c.Commit(ctx, t, func(st *ChatState) {
		if st.ProjectID != 0 && msg.ProjectID != 0 && st.ProjectID != msg.ProjectID {
			return
		}
		if msg.ID != 0 && slices.ContainsFunc(st.Messages, func(m domain.Message) bool { return m.ID == msg.ID }) {
			return
		}
		st.Messages = append(st.Messages, msg)
	})
}

// ClearError drops both the fetch and the send error.
func (c *Chat) ClearError() {
	c.Update(func(st *ChatState) {
		st.Error = ""
		st.Sending.Error = ""
	})
}
