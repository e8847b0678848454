package format

import (
	"os"
	"strings"
)

// ShortenPath replaces a leading home with "~", once.
// cwd is returned unchanged when home is empty or the root directory, or
// when cwd is not home or below it.
func ShortenPath(cwd, home string) string {
	home = strings.TrimSuffix(home, string(os.PathSeparator))
	if home == "" {
		return cwd
	}
	if cwd == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(cwd, home); ok && strings.HasPrefix(rest, string(os.PathSeparator)) {
		return "~" + rest
	}
	return cwd
}
