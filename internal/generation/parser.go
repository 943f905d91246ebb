package generation

import (
	"strings"

	"github.com/phrazzld/studybuddy-api/internal/domain"
)

// MaxQuestions caps the number of questions returned by ParseQuestions.
const MaxQuestions = 5

// ParseQuestions extracts question/answer pairs from generated text.
//
// Each line is trimmed. A line starting with "Q" that contains a colon starts
// a new question; its text is everything after the first colon. A line
// starting with "A:" sets the answer of the question in progress, if any.
// All other lines are ignored. At most MaxQuestions pairs are returned.
func ParseQuestions(text string) []domain.GeneratedQuestion {
	questions := make([]domain.GeneratedQuestion, 0, MaxQuestions)

	var current *domain.GeneratedQuestion
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Q") && strings.Contains(line, ":"):
			if current != nil {
				questions = append(questions, *current)
			}
			current = &domain.GeneratedQuestion{Question: afterColon(line)}
		case strings.HasPrefix(line, "A:") && current != nil:
			current.Answer = afterColon(line)
		}
	}

	if current != nil {
		questions = append(questions, *current)
	}

	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}

	return questions
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}
