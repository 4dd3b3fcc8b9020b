package models

// SearchResults groups search matches by entity kind, in hierarchy
// traversal order
type SearchResults struct {
	Courses []CourseSearchResult `json:"courses"`
	Modules []ModuleSearchResult `json:"modules"`
	Topics  []TopicSearchResult  `json:"topics"`
}

// Total returns the combined number of matches across all three lists.
func (r *SearchResults) Total() int {
	return len(r.Courses) + len(r.Modules) + len(r.Topics)
}

// CourseSearchResult is a flattened course match
type CourseSearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ModuleSearchResult is a flattened module match with its course context
type ModuleSearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CourseID    string `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
	Type        string `json:"type"`
}

// TopicSearchResult is a flattened topic match with its course and module context
type TopicSearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CourseID    string `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
	ModuleID    string `json:"moduleId"`
	ModuleTitle string `json:"moduleTitle"`
	Type        string `json:"type"`
}
