package application

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hailam/randfile/internal/ports"
	"github.com/hailam/randfile/internal/utils"
)

var (
	ErrNegativeSize = errors.New("size must not be negative")
	ErrSizeTooLarge = errors.New("size is too large")
	ErrEmptyPath    = errors.New("output path is empty")
)

// FileService validates a request, converts megabytes to bytes and hands the
// work to the configured generator.
type FileService struct {
	generator ports.FileGenerator
	parser    ports.SizeParser
	log       logrus.FieldLogger
}

// NewFileService constructs a FileService. A nil logger discards output.
func NewFileService(generator ports.FileGenerator, parser ports.SizeParser, log logrus.FieldLogger) *FileService {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &FileService{generator: generator, parser: parser, log: log}
}

// CreateFileFromSpec parses sizeSpec (e.g. "1000", "2GB") and calls CreateFile.
func (s *FileService) CreateFileFromSpec(outPath, sizeSpec string) error {
	sizeMB, err := s.parser.Parse(sizeSpec)
	if err != nil {
		return fmt.Errorf("invalid size '%s': %w", sizeSpec, err)
	}
	return s.CreateFile(outPath, sizeMB)
}

// CreateFile writes sizeMB megabytes of random text to outPath. Negative
// sizes are rejected before anything touches the disk.
func (s *FileService) CreateFile(outPath string, sizeMB int64) error {
	if outPath == "" {
		return ErrEmptyPath
	}
	if sizeMB < 0 {
		return fmt.Errorf("%w: %d MB", ErrNegativeSize, sizeMB)
	}
	if sizeMB > utils.MaxMegabytes {
		return fmt.Errorf("%w: %d MB exceeds %d MB", ErrSizeTooLarge, sizeMB, utils.MaxMegabytes)
	}
	target := utils.MegabytesToBytes(sizeMB)

	log := s.log.WithFields(logrus.Fields{
		"path":         outPath,
		"size_mb":      sizeMB,
		"target_bytes": target,
	})
	log.Debug("generating file")

	start := time.Now()
	if err := s.generator.Generate(outPath, target); err != nil {
		return fmt.Errorf("failed to generate %s: %w", outPath, err)
	}
	elapsed := time.Since(start)

	fields := logrus.Fields{"elapsed": elapsed.Round(time.Millisecond)}
	if secs := elapsed.Seconds(); secs > 0 {
		fields["mb_per_sec"] = fmt.Sprintf("%.2f", float64(sizeMB)/secs)
	}
	log.WithFields(fields).Info("file generated")
	return nil
}
