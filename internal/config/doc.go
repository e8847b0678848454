// Package config handles loading and validation of gitprompt configuration.
//
// Configuration is read from ~/.config/gitprompt/config.toml (or the file
// named by GITPROMPT_CONFIG). A missing file is not an error.
//
// # Configuration Sources (highest priority first)
//
//   - GITPROMPT_BACKEND / GITPROMPT_COLOR env vars
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - format: prompt line layout, default "{path} {summary}"
//   - backend: "native" (go-git) or "git" (git binary)
//   - color: "always", "auto" or "never"
//   - timeout: upper bound for the repository summary, e.g. "300ms"
//   - [theme]: preset name, light/dark mode, nerdfont glyphs and per-role
//     color overrides
//
// An invalid file yields Default() together with the error, so callers can
// keep rendering a prompt and report the problem out of band.
package config
