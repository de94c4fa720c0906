package ingestion

import (
	"encoding/json"
	"html"
	"io"
	"strings"

	types "github.com/quizforge/quizforge-backend/internal/domain"
)

type opentdbResult struct {
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

type opentdbFile struct {
	Results []opentdbResult `json:"results"`
}

// ParseOpenTDB reads an Open Trivia Database API dump. Fields arrive
// HTML-entity-escaped; each row carries its own category and difficulty.
// Rows with missing fields or an unknown difficulty count as skipped.
func ParseOpenTDB(r io.Reader) ([]Row, int, error) {
	var file opentdbFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, 0, err
	}

	var rows []Row
	skipped := 0
	for _, res := range file.Results {
		question := strings.TrimSpace(html.UnescapeString(res.Question))
		answer := strings.TrimSpace(html.UnescapeString(res.CorrectAnswer))
		category := strings.TrimSpace(html.UnescapeString(res.Category))
		difficulty, ok := types.ParseDifficulty(res.Difficulty)
		if question == "" || answer == "" || category == "" || !ok {
			skipped++
			continue
		}
		rows = append(rows, Row{
			Question:   question,
			Answer:     answer,
			Category:   category,
			Difficulty: difficulty,
		})
	}
	return rows, skipped, nil
}
