package models

// Topic represents a single learning topic inside a module
type Topic struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Completed bool         `json:"completed"`
	Content   TopicContent `json:"content"`
}

// TopicContent holds the main text of a topic and its ordered sections
type TopicContent struct {
	Main     string           `json:"main"`
	Sections []ContentSection `json:"sections"`
}

// ContentSection is one titled section of a topic's content
type ContentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Video   string `json:"video"`
	Image   string `json:"image"`
}

// Clone returns a deep copy of the topic.
func (t Topic) Clone() Topic {
	clone := t
	if t.Content.Sections != nil {
		clone.Content.Sections = make([]ContentSection, len(t.Content.Sections))
		copy(clone.Content.Sections, t.Content.Sections)
	}
	return clone
}

// CreateTopicRequest represents a request to create a topic
type CreateTopicRequest struct {
	Title     string        `json:"title"`
	Completed bool          `json:"completed"`
	Content   *TopicContent `json:"content,omitempty"`
}

// CompleteTopicRequest represents a request to set a topic's completed flag
type CompleteTopicRequest struct {
	Completed bool `json:"completed"`
}
