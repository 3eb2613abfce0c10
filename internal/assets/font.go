package assets

import (
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font sources that are not file paths.
const (
	SourceEmbedded = "goregular"
	SourceTerminal = "terminal"
)

// Font is a discovered font. Data holds TrueType/OpenType bytes; it is nil
// for the terminal, which draws text with its own cells.
type Font struct {
	Source string
	Data   []byte
}

// TerminalFont marks text as drawable by the terminal itself.
var TerminalFont = &Font{Source: SourceTerminal}

// FindFont returns the first candidate file that parses as a TrueType or
// OpenType font. When none is usable and embedded is set, the bundled Go
// Regular font is returned. It returns nil when no font is available.
func FindFont(candidates []string, embedded bool) *Font {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil || !ParsesAsFont(data) {
			continue
		}
		return &Font{Source: path, Data: data}
	}
	if embedded {
		return &Font{Source: SourceEmbedded, Data: goregular.TTF}
	}
	return nil
}

// ParsesAsFont reports whether data is a usable font file.
func ParsesAsFont(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	_, err := opentype.Parse(data)
	return err == nil
}
