// Package cloud runs the tag cloud pipeline end to end.
//
// Generate is strictly staged: the input file is drained and released before
// ranking starts, and the document is rendered only after ranking finishes.
// Every file handle is closed exactly once on every path; a failure to close
// is joined after whatever primary error already occurred so it never hides
// it. Errors carry one of the exported markers so callers can classify them
// with errors.Is.
//
// Commands build Options from flags, config, or prompts. Nothing in this
// package talks to the console.
package cloud
