package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// SinkWriter appends generated chunks to the output CSV. The file is
// created with the seed written verbatim (header plus all seed rows, in
// the seed's column order); every Append after that adds rows with no
// header repetition. Writes are flushed per chunk so that a failed run
// leaves a valid truncated prefix on disk.
type SinkWriter struct {
	f      *os.File
	w      *csv.Writer
	logger *zap.Logger
}

// NewSinkWriter creates (or truncates) the output file and writes the
// seed table into it. Pass nil logger to disable logging.
func NewSinkWriter(path string, seed *Table, logger *zap.Logger) (*SinkWriter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create sink: %w", err)
	}

	s := &SinkWriter{
		f:      f,
		w:      csv.NewWriter(f),
		logger: logger.Named("sink"),
	}

	if err := s.w.Write(seed.Columns); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := s.w.WriteAll(seed.Rows); err != nil {
		f.Close()
		return nil, fmt.Errorf("write seed rows: %w", err)
	}
	s.logger.Debug("sink initialized",
		zap.String("path", path),
		zap.Int("seed_rows", seed.NumRows()))
	return s, nil
}

// Append writes one generated chunk and flushes it to the OS.
func (s *SinkWriter) Append(rows [][]string) error {
	if err := s.w.WriteAll(rows); err != nil {
		return fmt.Errorf("append chunk: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (s *SinkWriter) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return fmt.Errorf("flush sink: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close sink: %w", err)
	}
	return nil
}
