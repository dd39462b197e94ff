package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/randfile/internal/adapters/txt"
	adapterutils "github.com/hailam/randfile/internal/adapters/utils"
	"github.com/hailam/randfile/internal/utils"
)

// --- Mock Implementations ---

// MockSizeParser is a mock for ports.SizeParser
type MockSizeParser struct {
	ParseFunc func(spec string) (int64, error)
}

func (m *MockSizeParser) Parse(spec string) (int64, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(spec)
	}
	switch spec {
	case "1":
		return 1, nil
	case "2GB":
		return 2048, nil
	case "-3":
		return -3, nil
	case "badsize":
		return 0, errors.New("mock parse error")
	default:
		return 0, fmt.Errorf("unexpected size spec in mock: %s", spec)
	}
}

// MockFileGenerator is a mock for ports.FileGenerator
type MockFileGenerator struct {
	GenerateFunc   func(outPath string, sizeBytes int64) error
	GenerateCalled bool
	CalledWithPath string
	CalledWithSize int64
}

func (m *MockFileGenerator) Generate(outPath string, sizeBytes int64) error {
	m.GenerateCalled = true
	m.CalledWithPath = outPath
	m.CalledWithSize = sizeBytes
	if m.GenerateFunc != nil {
		return m.GenerateFunc(outPath, sizeBytes)
	}
	return nil
}

// --- Test Cases ---

func TestFileService_CreateFile(t *testing.T) {
	tempDir := t.TempDir()
	outPath := filepath.Join(tempDir, "out.txt")

	tests := []struct {
		name           string
		outputPath     string
		sizeMB         int64
		setupGenerator func(*MockFileGenerator)
		wantErr        error  // checked with errors.Is
		wantErrMsg     string // substring, empty for success
		validateMock   func(*testing.T, *MockFileGenerator)
	}{
		{
			name:       "Success",
			outputPath: outPath,
			sizeMB:     3,
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.True(t, mg.GenerateCalled)
				assert.Equal(t, outPath, mg.CalledWithPath)
				assert.Equal(t, int64(3*1048576), mg.CalledWithSize)
			},
		},
		{
			name:       "Zero Size",
			outputPath: outPath,
			sizeMB:     0,
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.True(t, mg.GenerateCalled)
				assert.Zero(t, mg.CalledWithSize)
			},
		},
		{
			name:       "Negative Size Rejected",
			outputPath: outPath,
			sizeMB:     -1,
			wantErr:    ErrNegativeSize,
			wantErrMsg: "size must not be negative: -1 MB",
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.False(t, mg.GenerateCalled, "Generate must not run for a negative size")
			},
		},
		{
			name:       "Size Overflows Byte Count",
			outputPath: outPath,
			sizeMB:     utils.MaxMegabytes + 1, // 2^43 MB, wraps past MaxInt64 bytes
			wantErr:    ErrSizeTooLarge,
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.False(t, mg.GenerateCalled, "Generate must not run when the byte count overflows")
			},
		},
		{
			name:       "Largest Representable Size",
			outputPath: outPath,
			sizeMB:     utils.MaxMegabytes,
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.True(t, mg.GenerateCalled)
				assert.Equal(t, utils.MaxMegabytes*1048576, mg.CalledWithSize)
			},
		},
		{
			name:       "Empty Path",
			outputPath: "",
			sizeMB:     1,
			wantErr:    ErrEmptyPath,
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.False(t, mg.GenerateCalled)
			},
		},
		{
			name:       "Error During Generation",
			outputPath: outPath,
			sizeMB:     1,
			setupGenerator: func(mg *MockFileGenerator) {
				mg.GenerateFunc = func(string, int64) error {
					return os.ErrPermission
				}
			},
			wantErr:    os.ErrPermission,
			wantErrMsg: "failed to generate " + outPath,
			validateMock: func(t *testing.T, mg *MockFileGenerator) {
				assert.True(t, mg.GenerateCalled)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockGenerator := &MockFileGenerator{}
			if tc.setupGenerator != nil {
				tc.setupGenerator(mockGenerator)
			}
			service := NewFileService(mockGenerator, &MockSizeParser{}, nil)

			err := service.CreateFile(tc.outputPath, tc.sizeMB)

			if tc.wantErr == nil && tc.wantErrMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				if tc.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tc.wantErrMsg)
				}
			}

			if tc.validateMock != nil {
				tc.validateMock(t, mockGenerator)
			}
		})
	}
}

func TestFileService_CreateFileFromSpec(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.txt")

	tests := []struct {
		name       string
		sizeSpec   string
		wantSize   int64
		wantErrMsg string
	}{
		{name: "Megabytes", sizeSpec: "1", wantSize: 1048576},
		{name: "Gigabytes", sizeSpec: "2GB", wantSize: 2048 * 1048576},
		{name: "Parse Error", sizeSpec: "badsize", wantErrMsg: "invalid size 'badsize': mock parse error"},
		{name: "Negative", sizeSpec: "-3", wantErrMsg: "size must not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockGenerator := &MockFileGenerator{}
			service := NewFileService(mockGenerator, &MockSizeParser{}, nil)

			err := service.CreateFileFromSpec(outPath, tc.sizeSpec)
			if tc.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrMsg)
				assert.False(t, mockGenerator.GenerateCalled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSize, mockGenerator.CalledWithSize)
		})
	}
}

func TestFileService_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	service := NewFileService(&MockFileGenerator{}, &MockSizeParser{}, logger)
	require.NoError(t, service.CreateFile("out.txt", 2))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "generating file", entries[0].Message)
	assert.Equal(t, "out.txt", entries[0].Data["path"])
	assert.Equal(t, int64(2), entries[0].Data["size_mb"])
	assert.Equal(t, int64(2*1048576), entries[0].Data["target_bytes"])

	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, "file generated", entries[1].Message)
	assert.Contains(t, entries[1].Data, "elapsed")
}

// Runs the real adapters end to end.
func TestFileService_WithTxtGenerator(t *testing.T) {
	generator, err := txt.New(txt.Options{})
	require.NoError(t, err)
	service := NewFileService(generator, adapterutils.NewUtilSizeParser(), nil)

	outPath := filepath.Join(t.TempDir(), "random.txt")

	require.NoError(t, service.CreateFileFromSpec(outPath, "1MB"))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, first, 1048576)
	assert.True(t, utils.InPool(first, utils.CharacterPool))

	// Same arguments, same length, different content.
	require.NoError(t, service.CreateFile(outPath, 1))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, second, 1048576)
	assert.NotEqual(t, first, second)

	// Shrinking leaves no residual bytes.
	require.NoError(t, service.CreateFile(outPath, 0))
	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	// Sizes whose byte count would wrap are rejected without touching the file.
	require.NoError(t, service.CreateFile(outPath, 1))
	for _, spec := range []string{"17592186044416", "17592186044417"} {
		err = service.CreateFileFromSpec(outPath, spec)
		assert.ErrorIs(t, err, ErrSizeTooLarge, "size %s", spec)
	}
	info, err = os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, int64(1048576), info.Size())

	err = service.CreateFile(filepath.Join(t.TempDir(), "missing", "x.txt"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
