package manifest

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"reforge/internal/domain"
)

// AAPT2MinSDK is the lowest targetSdkVersion that needs --use-aapt2 to
// rebuild cleanly.
const AAPT2MinSDK = 34

var targetSDKPattern = regexp.MustCompile(`targetSdkVersion\s*=\s*"(\d+)"`)

// apktoolConfig mirrors the sdkInfo block of apktool.yml. apktool writes
// the versions as quoted strings.
type apktoolConfig struct {
	SDKInfo struct {
		TargetSDKVersion string `yaml:"targetSdkVersion"`
	} `yaml:"sdkInfo"`
}

// Detector extracts the target SDK version from a decompiled project.
type Detector struct{}

func New() *Detector { return &Detector{} }

// TargetSDK returns the project's targetSdkVersion and whether one was
// found. Unreadable or unparsable files count as not found.
func (d *Detector) TargetSDK(dir string) (int, bool) {
	if v, ok := fromManifest(filepath.Join(dir, "AndroidManifest.xml")); ok {
		return v, true
	}
	return fromApktoolYML(filepath.Join(dir, "apktool.yml"))
}

// UseAAPT2 reports whether the rebuild should pass --use-aapt2. Unknown
// SDK versions default to false.
func (d *Detector) UseAAPT2(dir string) bool {
	v, ok := d.TargetSDK(dir)
	return ok && v >= AAPT2MinSDK
}

func fromManifest(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	m := targetSDKPattern.FindSubmatch(content)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, false
	}
	return v, true
}

func fromApktoolYML(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	var cfg apktoolConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return 0, false
	}
	v, err := strconv.Atoi(cfg.SDKInfo.TargetSDKVersion)
	if err != nil {
		return 0, false
	}
	return v, true
}

var _ domain.SDKDetector = (*Detector)(nil)
