// Package prompt turns repository state into the colored summary shown
// after the path in a shell prompt.
//
// The work is split into three steps so the interesting parts stay pure:
//
//   - [Classify] folds status entries into [Flags].
//   - [Render] lays out the branch, the flag glyphs and the ahead/behind
//     arrows as an ordered [Summary] of styled tokens.
//   - [Summarize] drives a [Source] (the go-git backend or the git CLI
//     backend) through both and decides which failures hide the summary.
//
// Glyph order is fixed: dirty, new, untracked, deleted, moved, clean,
// ahead, behind. Clean only appears when no other flag is set.
package prompt
