package domain

import "context"

// Runner executes an external tool and maps a non-zero exit to an error.
type Runner interface {
	// Run executes name with args, discarding output unless verbose.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes name with args and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Reporter formats pipeline progress for the console.
type Reporter interface {
	Phasef(format string, a ...any)
	Infof(format string, a ...any)
	Successf(format string, a ...any)
	Warnf(format string, a ...any)
	Failf(format string, a ...any)
	// Debugf is emitted only in verbose mode.
	Debugf(format string, a ...any)
	// Spinner shows a progress indicator until the returned stop func runs.
	// It is a no-op in verbose mode or when stdout is not a terminal.
	Spinner(suffix string) (stop func())
}

// Rebuilder rebuilds a decompiled source tree into an unsigned APK.
type Rebuilder interface {
	Rebuild(ctx context.Context, dir, out string, useAAPT2 bool) error
}

// Aligner zip-aligns an APK and checks the result.
type Aligner interface {
	Align(ctx context.Context, in, out string) error
	Check(ctx context.Context, apk string) error
}

// Signer signs an APK with a keystore and verifies signatures.
type Signer interface {
	Sign(ctx context.Context, in, out, keystore string, profile SigningProfile) error
	Verify(ctx context.Context, apk string) error
}

// Installer talks to connected devices through adb.
type Installer interface {
	Devices(ctx context.Context) ([]Device, error)
	Install(ctx context.Context, serial, apk string) error
}

// KeystoreProvider resolves or creates the keystore used for signing.
type KeystoreProvider interface {
	Ensure(ctx context.Context, explicit string) (string, error)
}

// SDKDetector decides whether the rebuild should request AAPT2.
type SDKDetector interface {
	UseAAPT2(dir string) bool
}
