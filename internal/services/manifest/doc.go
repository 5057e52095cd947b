// Package manifest inspects a decompiled project to find its target SDK.
//
// The targetSdkVersion attribute decides whether apktool should rebuild
// with AAPT2. It is read from AndroidManifest.xml first and from
// apktool.yml's sdkInfo block as a fallback, since apktool moves the value
// there for newer projects.
package manifest
