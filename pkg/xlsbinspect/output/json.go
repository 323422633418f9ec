// Package output serializes inspection results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatTOON = "toon"
)

// ToJSON serializes a ResultSet with 2-space indentation. Non-ASCII and
// HTML characters are written as-is.
func ToJSON(results models.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromJSON decodes a ResultSet previously written by ToJSON.
func FromJSON(data []byte) (models.ResultSet, error) {
	var results models.ResultSet
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Persist writes the ResultSet to path, plus a TOON rendition next to it
// when format is "toon". Nothing is written for an empty ResultSet.
// It returns the paths written.
func Persist(path string, results models.ResultSet, format string) ([]string, error) {
	if format != "" && format != FormatJSON && format != FormatTOON {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if len(results) == 0 {
		return nil, nil
	}

	data, err := ToJSON(results)
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	written := []string{path}

	if format == FormatTOON {
		text, err := ToTOON(results)
		if err != nil {
			return written, fmt.Errorf("toon serialization failed: %w", err)
		}
		toonPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".toon"
		if err := os.WriteFile(toonPath, []byte(text), 0644); err != nil {
			return written, fmt.Errorf("failed to write output: %w", err)
		}
		written = append(written, toonPath)
	}

	return written, nil
}
