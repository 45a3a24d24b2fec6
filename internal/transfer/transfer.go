// Package transfer reads and writes question sets as JSON or CSV files.
package transfer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"trivia-api/internal/models"
	"trivia-api/internal/services"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var ErrUnknownFormat = errors.New("unknown transfer format")

var csvHeader = []string{"category", "question", "answer", "difficulty"}

type Record struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type File struct {
	Questions []Record `json:"questions"`
}

// FormatFromPath picks the format from the file extension, defaulting to JSON.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

func Write(w io.Writer, format string, questions []models.Question) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, questions)
	case FormatCSV:
		return writeCSV(w, questions)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Read parses a question file into creation inputs. Validation is left to
// QuestionService.ImportQuestions.
func Read(r io.Reader, format string) ([]services.QuestionInput, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatCSV:
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, questions []models.Question) error {
	file := File{Questions: make([]Record, 0, len(questions))}
	for _, q := range questions {
		file.Questions = append(file.Questions, Record{
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

func writeCSV(w io.Writer, questions []models.Question) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, q := range questions {
		row := []string{q.Category, q.Question, q.Answer, strconv.Itoa(q.Difficulty)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readJSON(r io.Reader) ([]services.QuestionInput, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	inputs := make([]services.QuestionInput, 0, len(file.Questions))
	for i, rec := range file.Questions {
		inputs = append(inputs, services.QuestionInput{
			Question:   rec.Question,
			Answer:     rec.Answer,
			Category:   rec.Category,
			Difficulty: strconv.Itoa(rec.Difficulty),
			Source:     fmt.Sprintf("question %d", i+1),
		})
	}
	return inputs, nil
}

func readCSV(r io.Reader) ([]services.QuestionInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV must have header + at least 1 row")
		}
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}

	var inputs []services.QuestionInput
	rows := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV: %w", err)
		}
		rows++

		line, _ := cr.FieldPos(0)
		if len(row) < len(csvHeader) {
			return nil, fmt.Errorf("CSV line %d: want %d columns, got %d", line, len(csvHeader), len(row))
		}
		if strings.TrimSpace(row[1]) == "" {
			continue
		}
		inputs = append(inputs, services.QuestionInput{
			Category:   row[0],
			Question:   row[1],
			Answer:     row[2],
			Difficulty: row[3],
			Source:     fmt.Sprintf("CSV line %d", line),
		})
	}
	if rows == 0 {
		return nil, errors.New("CSV must have header + at least 1 row")
	}
	return inputs, nil
}
