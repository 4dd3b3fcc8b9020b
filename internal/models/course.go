package models

// Course represents a course with its embedded module tree
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Icon        string   `json:"icon"`
	Modules     []Module `json:"modules"`
}

// ModuleByID returns a pointer to the module with the given ID, or nil if
// the course has no such module. The pointer aliases the course's own tree,
// so mutations through it are visible on the course.
func (c *Course) ModuleByID(id string) *Module {
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			return &c.Modules[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the course, including all nested modules,
// topics, tests and questions.
func (c Course) Clone() Course {
	clone := c
	if c.Modules != nil {
		clone.Modules = make([]Module, len(c.Modules))
		for i := range c.Modules {
			clone.Modules[i] = c.Modules[i].Clone()
		}
	}
	return clone
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

// UpdateCourseRequest represents a request to update a course (partial update)
//
// Pointer fields distinguish "field absent" from "field set to a zero value",
// so a description can be cleared by sending an empty string explicitly.
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}
