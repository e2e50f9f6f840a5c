package aiquiz

import "fmt"

const systemPrompt = `You are a quiz author. Generate multiple-choice questions as a JSON array.
Each element must have exactly these fields:
- "question": the prompt text
- "options": an array of 4 answer strings
- "correctAnswer": the zero-based index of the correct option
Return only the JSON array, with no surrounding text.`

func BuildUserPrompt(req GenerateRequest) string {
	return fmt.Sprintf("Generate %d %s questions about %s.", req.Count, req.Difficulty, req.Category)
}
