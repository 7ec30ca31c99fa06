// Package main hosts the subfetch CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the fetch, list, search, convert,
// deps, and config operations. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience; the
// heavy lifting lives in the internal packages.
package main
