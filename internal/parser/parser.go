package parser

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/KaramelBytes/seatboard/internal/sheets"
)

// Options tunes how local table files are read.
type Options struct {
	// Sheet selects the workbook sheet for .xlsx files; empty means the first sheet.
	Sheet string
	// Delimiter for CSV. If 0, ',' is used, or '\t' for .tsv files.
	Delimiter rune
}

// Parser turns file content into a sheet table.
type Parser interface {
	CanParse(filename string) bool
	Parse(filename string, content []byte, opt Options) (*sheets.Table, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the decoded table.
func ParseFile(path string, opt Options) (*sheets.Table, error) {
	var chosen Parser
	for _, p := range registry {
		if p.CanParse(path) {
			chosen = p
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return chosen.Parse(path, data, opt)
}

// FileSource loads a table from a local export of the residents sheet.
type FileSource struct {
	Path    string
	Options Options
}

// Load reads and decodes the file. The context is unused; reads are not cancellable.
func (s FileSource) Load(_ context.Context) (*sheets.Table, error) {
	return ParseFile(s.Path, s.Options)
}

func init() {
	Register(gvizParser{})
	Register(csvParser{})
	Register(xlsxParser{})
}

// ErrUnsupported indicates a format is not supported.
var ErrUnsupported = errors.New("unsupported table format")
