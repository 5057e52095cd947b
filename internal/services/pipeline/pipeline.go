package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reforge/internal/domain"
)

// Options configure one pipeline run.
type Options struct {
	InputDir  string // decompiled project directory
	OutputAPK string // final signed APK path
	Keystore  string // explicit keystore, empty for auto-resolution
	Install   bool   // install on connected devices after signing
}

// PhaseError reports which phase aborted the run.
type PhaseError struct {
	Phase domain.Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// Service runs the rebuild pipeline.
type Service struct {
	rebuilder domain.Rebuilder
	aligner   domain.Aligner
	signer    domain.Signer
	installer domain.Installer
	keystores domain.KeystoreProvider
	sdk       domain.SDKDetector
	profile   domain.SigningProfile
	out       domain.Reporter
}

func New(
	rebuilder domain.Rebuilder,
	aligner domain.Aligner,
	signer domain.Signer,
	installer domain.Installer,
	keystores domain.KeystoreProvider,
	sdk domain.SDKDetector,
	profile domain.SigningProfile,
	out domain.Reporter,
) *Service {
	return &Service{
		rebuilder: rebuilder,
		aligner:   aligner,
		signer:    signer,
		installer: installer,
		keystores: keystores,
		sdk:       sdk,
		profile:   profile,
		out:       out,
	}
}

// Run executes the pipeline. Install failures are reported as warnings and
// do not fail the run once a signed APK exists.
func (s *Service) Run(ctx context.Context, opts Options) error {
	workDir, err := os.MkdirTemp("", "reforge-")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)
	s.out.Debugf("work dir: %s", workDir)

	unsigned := filepath.Join(workDir, "unsigned.apk")
	aligned := filepath.Join(workDir, "aligned.apk")

	if err := s.rebuild(ctx, opts.InputDir, unsigned); err != nil {
		return &PhaseError{Phase: domain.PhaseRebuild, Err: err}
	}
	if err := s.align(ctx, unsigned, aligned); err != nil {
		return &PhaseError{Phase: domain.PhaseAlign, Err: err}
	}
	if err := s.sign(ctx, aligned, opts.OutputAPK, opts.Keystore); err != nil {
		return &PhaseError{Phase: domain.PhaseSign, Err: err}
	}
	if err := s.verify(ctx, opts.OutputAPK); err != nil {
		return &PhaseError{Phase: domain.PhaseVerify, Err: err}
	}
	if opts.Install {
		if err := s.install(ctx, opts.OutputAPK); err != nil {
			s.out.Warnf("Installation failed, but APK generated: %v", err)
		}
	}

	s.out.Successf("\n[+] PROCESS SUCCESSFULLY COMPLETED!")
	if abs, err := filepath.Abs(opts.OutputAPK); err == nil {
		s.out.Successf("Final APK: %s", abs)
	}
	return nil
}

func (s *Service) rebuild(ctx context.Context, dir, out string) error {
	s.out.Phasef("[+] PHASE 1: Rebuilding APK")
	useAAPT2 := s.sdk.UseAAPT2(dir)
	s.out.Debugf("use-aapt2: %v", useAAPT2)

	stop := s.out.Spinner("Rebuilding " + filepath.Base(dir) + "...")
	err := s.rebuilder.Rebuild(ctx, dir, out, useAAPT2)
	stop()

	// Some projects that report a new SDK still only build with the
	// legacy pipeline; retry once without the flag.
	if err != nil && useAAPT2 {
		s.out.Warnf("Rebuild with AAPT2 failed, retrying without it...")
		stop = s.out.Spinner("Rebuilding " + filepath.Base(dir) + "...")
		err = s.rebuilder.Rebuild(ctx, dir, out, false)
		stop()
	}
	if err != nil {
		return err
	}
	s.out.Successf("Rebuilt APK: %s", filepath.Base(out))
	return nil
}

func (s *Service) align(ctx context.Context, in, out string) error {
	s.out.Phasef("[+] PHASE 2: Aligning APK")
	if err := s.aligner.Align(ctx, in, out); err != nil {
		return err
	}
	s.out.Infof("Checking alignment...")
	if err := s.aligner.Check(ctx, out); err != nil {
		return err
	}
	s.out.Successf("Alignment verified correctly")
	return nil
}

func (s *Service) sign(ctx context.Context, in, out, explicit string) error {
	s.out.Phasef("[+] PHASE 3: Signing APK")
	ks, err := s.keystores.Ensure(ctx, explicit)
	if err != nil {
		return err
	}
	s.out.Infof("Using keystore: %s", filepath.Base(ks))
	if err := s.signer.Sign(ctx, in, out, ks, s.profile); err != nil {
		return err
	}
	s.out.Successf("Signed APK: %s", filepath.Base(out))
	return nil
}

func (s *Service) verify(ctx context.Context, apk string) error {
	s.out.Phasef("[+] PHASE 4: Verifying signature")
	if err := s.signer.Verify(ctx, apk); err != nil {
		return err
	}
	s.out.Successf("Signature verified correctly")
	return nil
}

func (s *Service) install(ctx context.Context, apk string) error {
	s.out.Phasef("[+] PHASE 5: Installing APK")
	s.out.Infof("Searching for devices...")
	devices, err := s.installer.Devices(ctx)
	if err != nil {
		return err
	}
	var online []domain.Device
	for _, d := range devices {
		if d.Online() {
			online = append(online, d)
		}
	}
	if len(online) == 0 {
		return fmt.Errorf("no connected devices found")
	}
	serials := make([]string, len(online))
	for i, d := range online {
		serials[i] = d.Serial
	}
	s.out.Successf("Devices detected: %s", strings.Join(serials, ", "))

	var failed []string
	for _, d := range online {
		s.out.Infof("Installing on %s...", d.Serial)
		if err := s.installer.Install(ctx, d.Serial, apk); err != nil {
			s.out.Failf("Install on %s: %v", d.Serial, err)
			failed = append(failed, d.Serial)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("install failed on: %s", strings.Join(failed, ", "))
	}
	return nil
}
