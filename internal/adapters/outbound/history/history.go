package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fivefactor/ipipneo/internal/domain"
)

const historyFile = ".ipipneo/history/results.json"

// FileHistory implements domain.ResultHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Path returns the history file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, historyFile)
}

func (h *FileHistory) Save(dir string, entry domain.ResultEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := Path(dir)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.ResultEntry, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ResultEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
