// Package paths expands environment-variable path templates into
// validated absolute paths.
//
// Save locations in the catalog are written as templates like
// "$XDG_DATA_HOME/MyGame/saves" so a single catalog works across
// machines. Expansion happens on every load, never cached, because
// the environment can change between runs.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/saveli-project/saveli/pkg/errors"
	"github.com/saveli-project/saveli/pkg/logging"
)

// Resolve expands a path template into an absolute path.
//
// Leading and trailing whitespace is trimmed. Variables use shell-style
// $NAME or ${NAME} syntax; undefined variables expand to the empty
// string. A template that references no variable is accepted with a
// warning. A result that is not absolute is an error.
func Resolve(template string) (string, error) {
	logger := logging.GetLogger("paths")

	trimmed := strings.TrimSpace(template)
	if !strings.HasPrefix(trimmed, "$") {
		logger.Warn().Str("path", trimmed).Msg("The path doesn't start with a variable")
	}

	expanded := os.ExpandEnv(trimmed)
	if !filepath.IsAbs(expanded) {
		return "", errors.Newf(errors.ErrRelativePath, "found relative path: %s", expanded).
			WithDetail("template", trimmed)
	}

	return filepath.Clean(expanded), nil
}
