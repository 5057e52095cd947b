package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"reforge/internal/app"
)

func TestNewWire_DefaultBins(t *testing.T) {
	w, err := app.NewWire(app.Config{})
	if err != nil {
		t.Fatalf("wire: %v", err)
	}

	if w.Apktool.Bin != "apktool" || w.Zipalign.Bin != "zipalign" || w.Keytool.Bin != "keytool" {
		t.Fatalf("unexpected default bins: %s %s %s", w.Apktool.Bin, w.Zipalign.Bin, w.Keytool.Bin)
	}
	if len(w.ToolBins) != 5 {
		t.Fatalf("want 5 tool bins, got %v", w.ToolBins)
	}
}

func TestNewWire_ProfileToolOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	yml := "tools:\n  apktool: /opt/android/apktool\n  adb: /opt/android/adb\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := app.NewWire(app.Config{ProfilePath: path})
	if err != nil {
		t.Fatalf("wire: %v", err)
	}

	if w.Apktool.Bin != "/opt/android/apktool" {
		t.Fatalf("apktool override not applied: %s", w.Apktool.Bin)
	}
	if w.ADB.Bin != "/opt/android/adb" {
		t.Fatalf("adb override not applied: %s", w.ADB.Bin)
	}
	// Tools without an override keep their PATH names.
	if w.Zipalign.Bin != "zipalign" || w.Signer.Bin != "apksigner" {
		t.Fatalf("unexpected bins: %s %s", w.Zipalign.Bin, w.Signer.Bin)
	}

	var probed bool
	for _, bin := range w.ToolBins {
		if bin == "/opt/android/apktool" {
			probed = true
		}
	}
	if !probed {
		t.Fatalf("overridden bin missing from probe list: %v", w.ToolBins)
	}
}
