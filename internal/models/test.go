package models

// Test represents a module's assessment test
type Test struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question represents one multiple-choice question of a test
//
// Options always holds exactly four answer strings; CorrectAnswer is a
// zero-based index into Options.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuestionByID returns a pointer to the question with the given ID, or nil
// if the test has no such question.
func (t *Test) QuestionByID(id string) *Question {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the test and its questions.
func (t Test) Clone() Test {
	clone := t
	if t.Questions != nil {
		clone.Questions = make([]Question, len(t.Questions))
		for i, q := range t.Questions {
			clone.Questions[i] = q
			if q.Options != nil {
				clone.Questions[i].Options = make([]string, len(q.Options))
				copy(clone.Questions[i].Options, q.Options)
			}
		}
	}
	return clone
}

// SetTestRequest represents a request to replace a module's test
type SetTestRequest struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// CreateQuestionRequest represents a request to add a question to a test
type CreateQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
}

// UpdateQuestionRequest represents a request to update a question (partial update)
type UpdateQuestionRequest struct {
	Question      *string  `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
}

// SubmitTestRequest represents a test submission with one answer index per question
type SubmitTestRequest struct {
	Answers []int `json:"answers"`
}

// TestResult represents the outcome of scoring a test submission
type TestResult struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Percentage     string `json:"percentage"`
	Passed         bool   `json:"passed"`
}
