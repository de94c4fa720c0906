package ingestion

import (
	"bufio"
	"html"
	"io"
	"regexp"
	"strings"

	types "github.com/quizforge/quizforge-backend/internal/domain"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML flattens the markup Anki embeds in card fields.
func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseAnki reads a tab-separated Anki export of question\tanswer pairs.
// Lines starting with # are export headers and empty lines are separators;
// neither counts. Malformed, whitespace-only, or empty-field lines count as
// skipped. Every card lands in the fixed category with the fixed difficulty.
func ParseAnki(r io.Reader, category string, difficulty types.Difficulty) ([]Row, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []Row
	skipped := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			skipped++
			continue
		}
		question := stripHTML(fields[0])
		answer := stripHTML(fields[1])
		if question == "" || answer == "" {
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
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return rows, skipped, nil
}
