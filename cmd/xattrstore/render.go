package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/xattrstore/structured"
	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"
)

const maxPreview = 64

//nolint:gochecknoglobals
var (
	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	kindStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("10"))
)

func renderSize(key string, value []byte) string {
	return fmt.Sprintf("%s %s",
		sizeStyle.Render(fmt.Sprintf("%9s", humanize.IBytes(uint64(len(value))))),
		keyStyle.Render(key),
	)
}

func renderAttribute(key string, value []byte) string {
	return fmt.Sprintf("%s %s %s %s",
		keyStyle.Render(key),
		sizeStyle.Render(humanize.IBytes(uint64(len(value)))),
		kindStyle.Render(describe(value)),
		preview(value),
	)
}

// describe names how a value would be read: as a binary structured value,
// as text, or as opaque bytes.
func describe(value []byte) string {
	if structured.Detect(value) == structured.FormatCBOR {
		if _, err := structured.Unmarshal(value); err == nil {
			return "cbor"
		}

		return "binary"
	}

	if utf8.Valid(value) {
		return "text"
	}

	return "binary"
}

func preview(value []byte) string {
	if describe(value) == "text" {
		runes := []rune(string(value))
		if len(runes) > maxPreview {
			return strconv.Quote(string(runes[:maxPreview])) + "..."
		}

		return strconv.Quote(string(value))
	}

	if len(value) > maxPreview {
		return hex.EncodeToString(value[:maxPreview]) + "..."
	}

	return hex.EncodeToString(value)
}

func digest(value []byte) string {
	hasher := blake3.New()
	_, _ = hasher.Write(value)

	return hex.EncodeToString(hasher.Sum(nil))
}
