package service

import (
	"fmt"

	"github.com/phrazzld/studybuddy-api/internal/domain"
)

// FallbackQuestions returns the fixed questions used when generation fails.
// Every question names the subject.
func FallbackQuestions(subject string) []domain.GeneratedQuestion {
	return []domain.GeneratedQuestion{
		{
			Question: fmt.Sprintf("What is the main topic discussed in the %s notes?", subject),
			Answer:   "The notes cover various aspects of the subject matter.",
		},
		{
			Question: fmt.Sprintf("How does %s relate to real-world applications?", subject),
			Answer:   "The subject has practical applications in various fields.",
		},
		{
			Question: fmt.Sprintf("What are the key concepts in %s?", subject),
			Answer:   "Key concepts include fundamental principles and theories.",
		},
		{
			Question: fmt.Sprintf("Why is %s important for students?", subject),
			Answer:   "It provides essential knowledge and skills for academic success.",
		},
		{
			Question: fmt.Sprintf("What methods are used in %s?", subject),
			Answer:   "Various scientific and analytical methods are employed.",
		},
	}
}
