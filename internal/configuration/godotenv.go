package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads configuration files with [godotenv.Read].
type GodotenvProvider struct{}

// Read returns the key/value pairs of the given files. Without files, it
// returns an empty map rather than falling back to ".env".
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	if len(filenames) == 0 {
		return map[string]string{}, nil
	}

	data, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
