package ingestion

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	types "github.com/quizforge/quizforge-backend/internal/domain"
)

const jeopardyDateLayout = "2006-01-02"

// ValueToDifficulty maps a Jeopardy board value to a difficulty band.
func ValueToDifficulty(value int) types.Difficulty {
	switch {
	case value <= 400:
		return types.DifficultyEasy
	case value <= 800:
		return types.DifficultyMedium
	default:
		return types.DifficultyHard
	}
}

// ParseJeopardy reads tab-separated archive rows of
// round\tvalue\tcategory\tquestion\tanswer\tair_date. The clue value drives
// the difficulty band and is preserved alongside the round name; a bad or
// missing air_date drops only the date, not the row.
func ParseJeopardy(r io.Reader) ([]Row, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []Row
	skipped := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			skipped++
			continue
		}
		round := strings.TrimSpace(fields[0])
		value, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		category := strings.TrimSpace(fields[2])
		question := strings.TrimSpace(fields[3])
		answer := strings.TrimSpace(fields[4])
		if err != nil || value <= 0 || category == "" || question == "" || answer == "" {
			skipped++
			continue
		}

		row := Row{
			Question:      question,
			Answer:        answer,
			Category:      category,
			Difficulty:    ValueToDifficulty(value),
			OriginalValue: &value,
			OriginalRound: round,
		}
		if len(fields) >= 6 {
			if t, dateErr := time.Parse(jeopardyDateLayout, strings.TrimSpace(fields[5])); dateErr == nil {
				d := datatypes.Date(t)
				row.AirDate = &d
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return rows, skipped, nil
}
