// Package configuration reads the settings of the command line tool from
// dotenv-style files.
package configuration

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/desertwitch/xattrstore/structured"
)

// Keys recognized in a configuration file.
const (
	KeyFormat   = "XATTRSTORE_FORMAT"
	KeyNoFollow = "XATTRSTORE_NOFOLLOW"
	KeyLogLevel = "XATTRSTORE_LOGLEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings are the effective settings of the command line tool.
type Settings struct {
	Format   structured.Format // Format used for writing structured values
	NoFollow bool              // Whether symbolic links are acted upon themselves
	LogLevel slog.Level        // Minimum level of emitted log records
}

// DefaultSettings returns the [Settings] used without a configuration file.
func DefaultSettings() *Settings {
	return &Settings{
		Format:   structured.FormatDefault,
		NoFollow: false,
		LogLevel: slog.LevelInfo,
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// ReadGeneric reads the key/value pairs of the given files.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// Load returns the [Settings] from the given files. Keys missing from the
// files keep their value from [DefaultSettings].
func (c *Handler) Load(filenames ...string) (*Settings, error) {
	settings := DefaultSettings()

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) failed to read: %w", err)
	}

	if value := c.MapKeyToString(envMap, KeyFormat); value != "" {
		format, err := structured.ParseFormat(value)
		if err != nil {
			return nil, fmt.Errorf("(config) %w: %s=%q", ErrInvalidValue, KeyFormat, value)
		}
		settings.Format = format
	}

	if value := c.MapKeyToString(envMap, KeyNoFollow); value != "" {
		noFollow, ok := c.MapKeyToBool(envMap, KeyNoFollow)
		if !ok {
			return nil, fmt.Errorf("(config) %w: %s=%q", ErrInvalidValue, KeyNoFollow, value)
		}
		settings.NoFollow = noFollow
	}

	if value := c.MapKeyToString(envMap, KeyLogLevel); value != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return nil, fmt.Errorf("(config) %w: %s=%q", ErrInvalidValue, KeyLogLevel, value)
		}
	}

	return settings, nil
}

// MapKeyToString returns the trimmed value of the key, or "" if it is not
// present.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool returns the boolean value of the key. The second return
// value is false if the key is missing or not a boolean.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, bool) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false, false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}

	return boolValue, true
}
