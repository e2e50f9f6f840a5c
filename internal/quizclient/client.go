package quizclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SessionQuestion is one fetched question. CorrectAnswer stays nil for
// sessions served by the quiz API, which strips the answer key; a caller
// feeding the flow from a trusted source may populate it so results carry
// per-question correctness.
type SessionQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
}

// HistoryRecord is the server's persisted confirmation of a submission.
type HistoryRecord struct {
	ID             string    `json:"id"`
	User           string    `json:"user"`
	Quiz           string    `json:"quiz"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Answers        []*int    `json:"answers"`
	Date           time.Time `json:"date"`
}

type submitPayload struct {
	QuizID         string `json:"quizId"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Answers        []*int `json:"answers"`
}

type apiError struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) fetchQuestions(ctx context.Context) ([]SessionQuestion, error) {
	var questions []SessionQuestion
	if err := c.do(ctx, http.MethodGet, "/quiz/start", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) submitHistory(ctx context.Context, payload submitPayload) (*HistoryRecord, error) {
	var record HistoryRecord
	if err := c.do(ctx, http.MethodPost, "/quiz/history", payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
