// Package config loads the optional signing profile YAML.
//
// A profile overrides the built-in Android debug identity: keystore path,
// alias and passwords. Absent file and flags, signing falls back to the
// stock debug credentials.
package config
