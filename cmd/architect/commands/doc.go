// Package commands defines the architect CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - serve      Run the HTTP API server
//   - generate   Run the generation pipeline once for a description
//
// # Implementation
//
// The root command loads .env and config.yaml, reads the design-token set,
// and builds the dependency graph (LLM client, agents, writer, pipeline)
// before any subcommand runs, so handlers share one read-only token set and
// one configured pipeline.
package commands
