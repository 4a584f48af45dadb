// Package main hosts the tagcloud CLI entrypoint and command graph.
//
// The Cobra-based command tree gathers an input file, a word count, and an
// output name from flags, configuration, or console prompts, then hands them
// to the cloud pipeline. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: the counting, ranking, and rendering live in
// internal packages; commands only translate terminal input into
// cloud.Options and report the outcome.
package main
