// Package commands defines the reforge CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - build     Rebuild, align, sign, verify and optionally install an APK
//   - doctor    Check that the required Android tools are on PATH
//   - devices   List connected adb devices
//   - keystore  Resolve or generate the signing keystore
//
// # Implementation
//
// The root command builds a dependency graph (runner, tool wrappers,
// services) before any subcommand runs, so handlers share one app context
// with a common command timeout and signing profile.
package commands
