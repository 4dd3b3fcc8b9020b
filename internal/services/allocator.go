package services

import (
	"strconv"
	"sync"

	"github.com/courseatlas/backend/internal/models"
)

// IDKind identifies the entity kind an identifier is allocated for.
type IDKind string

const (
	IDKindCourse   IDKind = "course"
	IDKindModule   IDKind = "module"
	IDKindTopic    IDKind = "topic"
	IDKindQuestion IDKind = "question"
)

// firstAllocatedID is the initial counter value; "1" is reserved for the
// seed catalog.
const firstAllocatedID = 2

// IDAllocator issues monotonically increasing string identifiers per entity
// kind. Counters live for the process lifetime and are not persisted, so
// they reset on restart.
type IDAllocator struct {
	mu   sync.Mutex
	next map[IDKind]int
}

// NewIDAllocator creates an allocator with every kind's counter at its
// initial value.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{
		next: map[IDKind]int{
			IDKindCourse:   firstAllocatedID,
			IDKindModule:   firstAllocatedID,
			IDKindTopic:    firstAllocatedID,
			IDKindQuestion: firstAllocatedID,
		},
	}
}

// Next returns the current counter value for the kind as a string and
// increments it.
func (a *IDAllocator) Next(kind IDKind) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	n, ok := a.next[kind]
	if !ok {
		n = firstAllocatedID
	}
	a.next[kind] = n + 1
	return strconv.Itoa(n)
}

// Observe advances the counter past an existing identifier so future
// allocations never reuse it. Non-numeric identifiers are ignored.
func (a *IDAllocator) Observe(kind IDKind, id string) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if next, ok := a.next[kind]; !ok || n >= next {
		a.next[kind] = n + 1
	}
}

// ObserveCourses advances every counter past the identifiers already used
// in the given catalog. Called once at startup when the storage backend is
// durable.
func (a *IDAllocator) ObserveCourses(courses []models.Course) {
	for _, course := range courses {
		a.Observe(IDKindCourse, course.ID)
		for _, module := range course.Modules {
			a.Observe(IDKindModule, module.ID)
			for _, topic := range module.Topics {
				a.Observe(IDKindTopic, topic.ID)
			}
			for _, question := range module.Test.Questions {
				a.Observe(IDKindQuestion, question.ID)
			}
		}
	}
}
