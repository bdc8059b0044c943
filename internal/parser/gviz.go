package parser

import (
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/seatboard/internal/sheets"
)

// gvizParser reads a saved gviz response, envelope included.
type gvizParser struct{}

func (gvizParser) CanParse(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gviz", ".txt":
		return true
	}
	return false
}

func (gvizParser) Parse(_ string, content []byte, _ Options) (*sheets.Table, error) {
	return sheets.ParsePayload(content)
}
