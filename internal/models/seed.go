package models

// SeedCourses returns the sample catalog loaded into an empty store at
// startup. Entity IDs all start at "1"; the allocator hands out "2" onwards.
func SeedCourses() []Course {
	return []Course{
		{
			ID:          "1",
			Title:       "Introduction to Biology",
			Description: "Biology is the science of life. It studies living things, how they grow, survive, and interact with the environment.",
			Category:    "Science",
			Icon:        "🧬",
			Modules: []Module{
				{
					ID:    "1",
					Title: "Biology Basics",
					Order: 1,
					Topics: []Topic{
						{
							ID:        "1",
							Title:     "What is Biology?",
							Completed: true,
							Content: TopicContent{
								Main:     "Biology is the scientific study of life and living organisms...",
								Sections: []ContentSection{},
							},
						},
					},
					Test: Test{
						Title: "Biology Assessment",
						Questions: []Question{
							{
								ID:       "1",
								Question: "What is gaseous exchange?",
								Options: []string{
									"Food digestion process",
									"Oxygen and carbon dioxide transfer",
									"Blood circulation",
									"Cell division",
								},
								CorrectAnswer: 1,
							},
						},
					},
				},
			},
		},
	}
}
