package cli

import (
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"
)

// ReadList decodes a JSON or YAML list of T from path, or from in when path
// is "-". Field names follow the json tags of T.
func ReadList[T any](path string, in io.Reader) ([]T, error) {
	if path == "" {
		return nil, fmt.Errorf("an input file is required")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []T
	if err := yaml.UnmarshalStrict(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s contains no entries", path)
	}
	return items, nil
}
