package tools

import (
	"fmt"
	"os/exec"
	"strings"
)

// Required lists the binaries the pipeline shells out to.
var Required = []string{"apktool", "zipalign", "apksigner", "adb", "keytool"}

// ProbeResult records where one tool resolved, if it did.
type ProbeResult struct {
	Tool  string
	Path  string
	Found bool
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Probe resolves each named binary on PATH.
func Probe(names []string) []ProbeResult {
	results := make([]ProbeResult, 0, len(names))
	for _, name := range names {
		path, err := lookPath(name)
		results = append(results, ProbeResult{Tool: name, Path: path, Found: err == nil})
	}
	return results
}

// Missing filters results down to the tools that did not resolve.
func Missing(results []ProbeResult) []string {
	var missing []string
	for _, r := range results {
		if !r.Found {
			missing = append(missing, r.Tool)
		}
	}
	return missing
}

// CheckRequired probes the given binaries (tool names or explicit paths)
// and fails if any is absent, so no phase starts against a half-present
// environment.
func CheckRequired(names []string) ([]ProbeResult, error) {
	results := Probe(names)
	if missing := Missing(results); len(missing) > 0 {
		return results, fmt.Errorf("missing tools: %s", strings.Join(missing, ", "))
	}
	return results, nil
}
