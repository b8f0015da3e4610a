package git

import (
	"fmt"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ResolvePath joins repoName onto baseDir without letting it escape.
func ResolvePath(baseDir, repoName string) (string, error) {
	path, err := securejoin.SecureJoin(baseDir, repoName)
	if err != nil {
		return "", fmt.Errorf("failed to secure join paths: %w", err)
	}
	return path, err
}
