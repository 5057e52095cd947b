// Package pipeline sequences the rebuild of a decompiled APK.
//
// Phases run in fixed order: rebuild, align, sign, verify, and optionally
// install. A failing phase aborts the run; there are no retries except the
// rebuild fallback without AAPT2. Intermediate APKs live in a per-run temp
// directory that is removed when the run ends.
package pipeline
