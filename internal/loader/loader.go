package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lernquiz/backend/internal/domain/dataset"
	"github.com/lernquiz/backend/internal/domain/question"
)

// ErrNotFound is returned when a dataset id doesn't resolve to a file.
var ErrNotFound = errors.New("dataset not found")

const customPrefix = "custom_"

// Catalog discovers datasets in a directory and loads them into the
// canonical question shape. Every *.json file is a dataset; an optional
// custom_<id>.json next to it holds user-added questions, which receive ids
// after the base maximum.
type Catalog struct {
	dir string
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Datasets lists everything selectable, sorted by id.
func (c *Catalog) Datasets() ([]dataset.Dataset, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}

	var out []dataset.Dataset
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, customPrefix) {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		qs, err := c.Load(id)
		if err != nil {
			continue
		}
		out = append(out, dataset.Dataset{
			ID:            id,
			Name:          strings.ReplaceAll(id, "_", " "),
			QuestionCount: len(qs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Load returns the canonical question list for a dataset: base file plus
// custom questions, normalized and with stable positive ids.
func (c *Catalog) Load(id string) ([]question.Question, error) {
	base, err := readQuestionFile(filepath.Join(c.dir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	custom, err := readQuestionFile(c.customPath(id))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	maxID := 0
	var out []question.Question
	for i, raw := range base {
		q := normalize(raw)
		if q.ID == 0 {
			q.ID = i + 1
		}
		if q.ID > maxID {
			maxID = q.ID
		}
		out = append(out, q)
	}
	for i, raw := range custom {
		q := normalize(raw)
		if q.ID == 0 {
			q.ID = maxID + i + 1
		}
		if q.Source == "" {
			q.Source = "user_added"
		}
		out = append(out, q)
	}
	return out, nil
}

// AddCustom appends a question to the dataset's custom file. The base file
// is never touched.
func (c *Catalog) AddCustom(id string, q question.Question) error {
	if _, err := os.Stat(filepath.Join(c.dir, id+".json")); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}

	existing, err := readQuestionFile(c.customPath(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	existing = append(existing, rawFromQuestion(q))
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("encode custom questions: %w", err)
	}
	if err := os.WriteFile(c.customPath(id), data, 0o644); err != nil {
		return fmt.Errorf("write custom questions: %w", err)
	}
	return nil
}

func (c *Catalog) customPath(id string) string {
	return filepath.Join(c.dir, customPrefix+id+".json")
}

func readQuestionFile(path string) ([]rawQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []rawQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return raw, nil
}
