// Package cmd runs external commands with stderr-aware errors.
//
// [OutputContext] wraps [os/exec.CommandContext]: stderr is captured and used
// as the error message when the command fails, the context bounds the
// process lifetime, and every invocation is reported to the context logger
// (visible with --verbose) together with its duration.
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "status", "--porcelain=v2")
//	if err != nil {
//	    // err carries git's stderr, or ctx.Err() on timeout
//	}
package cmd
