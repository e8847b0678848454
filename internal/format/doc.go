// Package format builds the text of the prompt line.
//
// # Path Shortening
//
// [ShortenPath] replaces a leading home directory with "~". Only a match on
// a path boundary counts, so "/home/al" does not shorten "/home/alice".
//
// # Format Placeholders
//
// The line layout comes from the format config key:
//
//   - {path}: the shortened working directory
//   - {summary}: branch and status glyphs, empty outside a repository
//   - {branch}: the branch name alone, empty outside a repository
//
// Default format is "{path} {summary}", which leaves a trailing space when
// there is no summary.
//
// # Validation
//
// Use [ValidateFormat] to check format strings before use. It ensures:
//   - All placeholders are recognized
//   - At least one placeholder is present
package format
