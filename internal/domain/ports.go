package domain

// ConfigLoader loads scorer configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (ScoringConfig, error)
}

// AnswerReader decodes an answer sheet from a file.
type AnswerReader interface {
	Read(path string) (AnswerSheet, error)
}

// ResultHistory keeps compact entries of past results.
type ResultHistory interface {
	Save(dir string, entry ResultEntry) error
	Load(dir string) ([]ResultEntry, error)
}
