package quiz

import "github.com/abaakil35/Qiuz-App/internal/question"

// Score counts the positions where the submitted answer matches the
// question's answer key. A nil entry is an unanswered question and never
// counts; an index outside the options range is simply wrong, not an error.
func Score(questions []*question.Question, answers []*int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}
