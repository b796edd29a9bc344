package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/orchestration"
)

func sampleResult() (orchestration.CalculationResult, orchestration.PresentationOptions) {
	return orchestration.CalculationResult{
			Name:     "karatsuba",
			Product:  binary.MustParse("10010110"),
			Duration: 5 * time.Millisecond,
		},
		orchestration.PresentationOptions{XDigits: 4, YDigits: 4}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	result, opts := sampleResult()

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write product to file",
			outputFile: filepath.Join(tmpDir, "product.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)
				s := string(content)
				assert.Contains(t, s, "# Binary Multiplication Result\n")
				assert.Contains(t, s, "# Algorithm: karatsuba\n")
				assert.Contains(t, s, "# Duration: 5ms\n")
				assert.Contains(t, s, "# Operand digits: x=4 y=4\n")
				assert.Contains(t, s, "# Product digits: 8\n")
				assert.Contains(t, s, "\n10010110\n")
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "product.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				_, err := os.Stat(filePath)
				assert.NoError(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := WriteResultToFile(result, opts, OutputConfig{OutputFile: tc.outputFile})
			require.NoError(t, err)
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteResultToFile_Unwritable(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	result, opts := sampleResult()
	err := WriteResultToFile(result, opts, OutputConfig{OutputFile: filepath.Join(blocker, "product.txt")})
	assert.Error(t, err)
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()
	result, _ := sampleResult()
	assert.Equal(t, "10010110", FormatQuietResult(result))
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	result, _ := sampleResult()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, result)
	assert.Equal(t, "10010110\n", buf.String())
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	result, opts := sampleResult()

	t.Run("Quiet mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, DisplayResultWithConfig(&buf, result, opts, OutputConfig{Quiet: true}))
		assert.Equal(t, "10010110\n", buf.String())
	})

	t.Run("Quiet mode with file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(tmpDir, "quiet.txt")
		var buf bytes.Buffer
		require.NoError(t, DisplayResultWithConfig(&buf, result, opts, OutputConfig{Quiet: true, OutputFile: path}))
		assert.Equal(t, "10010110\n", buf.String())
		assert.FileExists(t, path)
	})

	t.Run("Standard mode with file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(tmpDir, "standard.txt")
		var buf bytes.Buffer
		require.NoError(t, DisplayResultWithConfig(&buf, result, opts, OutputConfig{OutputFile: path, Details: true}))
		out := buf.String()
		assert.Contains(t, out, "Result: 10010110")
		assert.Contains(t, out, "--- Details ---")
		assert.Contains(t, out, "Result saved to: "+path)
	})
}
