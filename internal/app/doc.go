// Package app wires application dependencies for the CLI.
//
// It builds the command runner, tool wrappers and services from Config,
// exposing them via the Wire struct for commands to use.
package app
