package models

import "time"

// Module represents a course module owning topics and one test
type Module struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Order       int       `json:"order"`
	IsPublished bool      `json:"isPublished"`
	Topics      []Topic   `json:"topics"`
	Test        Test      `json:"test"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TopicByID returns a pointer to the topic with the given ID, or nil if
// the module has no such topic.
func (m *Module) TopicByID(id string) *Topic {
	for i := range m.Topics {
		if m.Topics[i].ID == id {
			return &m.Topics[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the module and everything it owns.
func (m Module) Clone() Module {
	clone := m
	if m.Topics != nil {
		clone.Topics = make([]Topic, len(m.Topics))
		for i := range m.Topics {
			clone.Topics[i] = m.Topics[i].Clone()
		}
	}
	clone.Test = m.Test.Clone()
	return clone
}

// CreateModuleRequest represents a request to create a module
type CreateModuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Order       *int   `json:"order,omitempty"`
	IsPublished bool   `json:"isPublished"`
}

// UpdateModuleRequest represents a request to update a module (partial update)
type UpdateModuleRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}
