// Package cmd defines and implements the CLI commands for the prober
// executable. The root command wires configuration and logging; the
// check subcommand runs the configured strategies over a company list.
package cmd
