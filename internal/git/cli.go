package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/raphi011/gitprompt/internal/cmd"
)

// CLI reads repository state by running the git binary in dir.
type CLI struct {
	dir string
}

// NewCLI returns a CLI source rooted at dir (any directory inside the repo).
func NewCLI(dir string) *CLI {
	return &CLI{dir: dir}
}

// DiscoverCLI finds the repository enclosing dir with git rev-parse.
// Any failure, including a missing git binary, is reported as ErrNotFound.
func DiscoverCLI(ctx context.Context, dir string) (*CLI, error) {
	out, err := cmd.OutputContext(ctx, dir, "git", "--no-optional-locks", "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return NewCLI(strings.TrimSpace(string(out))), nil
}

// outputGit runs git in c.dir without taking optional locks, so a prompt
// render never contends with a concurrent git command for the index.
func (c *CLI) outputGit(ctx context.Context, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, c.dir, "git", append([]string{"--no-optional-locks"}, args...)...)
}

// Head returns the short name of HEAD ("HEAD" when detached).
func (c *CLI) Head(ctx context.Context) (string, error) {
	out, err := c.outputGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Status lists changed and untracked paths. Rename detection is off, so a
// staged rename reads as a deletion plus a new file, as with Repository.
func (c *CLI) Status(ctx context.Context) ([]StatusEntry, error) {
	out, err := c.outputGit(ctx, "status", "--porcelain=v2", "-z", "--untracked-files=normal", "--no-renames")
	if err != nil {
		return nil, fmt.Errorf("git status: %w", err)
	}
	return ParsePorcelainV2(out)
}

// Divergence compares HEAD with @{upstream}.
func (c *CLI) Divergence(ctx context.Context) (Divergence, error) {
	out, err := c.outputGit(ctx, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return Divergence{}, fmt.Errorf("count divergence: %w", err)
	}
	return parseLeftRight(string(out))
}

// parseLeftRight parses "<ahead>\t<behind>" from rev-list --left-right --count.
func parseLeftRight(s string) (Divergence, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Divergence{}, fmt.Errorf("unexpected rev-list output %q", s)
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return Divergence{}, fmt.Errorf("parse ahead count: %w", err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return Divergence{}, fmt.Errorf("parse behind count: %w", err)
	}
	return Divergence{Ahead: ahead, Behind: behind}, nil
}
