package domain

// Message is one entry of a project's chat history.
type Message struct {
	ID         int64  `json:"id,omitempty"`
	Content    string `json:"content"`
	SenderID   int64  `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Sender     *User  `json:"sender,omitempty"`
	ProjectID  int64  `json:"projectId,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// From returns the sender id, whichever field carries it.
func (m Message) From() int64 {
	if m.SenderID != 0 {
		return m.SenderID
	}
	if m.Sender != nil {
		return m.Sender.Identity()
	}
	return 0
}

// FromName returns the sender's display name.
func (m Message) FromName() string {
	if m.SenderName != "" {
		return m.SenderName
	}
	if m.Sender != nil {
		return m.Sender.DisplayName()
	}
	return ""
}
