package question

// QuestionInput is the payload for create and update. Update is a full
// replace of the mutable fields; partial updates are not supported.
type QuestionInput struct {
	Title         string   `json:"title"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}
