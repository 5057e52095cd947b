// Package tools wraps the external Android toolchain binaries.
//
// Each wrapper owns the argv template for one binary (apktool, zipalign,
// apksigner, adb, keytool) and delegates execution to a domain.Runner.
// Probe checks up front that every required binary resolves on PATH.
package tools
