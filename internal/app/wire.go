package app

import (
	"reforge/internal/config"
	"reforge/internal/console"
	"reforge/internal/domain"
	"reforge/internal/run"
	keystoresvc "reforge/internal/services/keystore"
	"reforge/internal/services/manifest"
	pipelinesvc "reforge/internal/services/pipeline"
	"reforge/internal/tools"
)

// Wire bundles the runner, tool wrappers and services for the CLI.
type Wire struct {
	Out      *console.Reporter
	Runner   domain.Runner
	Profile  config.Profile
	ToolBins []string // effective binaries, profile overrides applied
	Apktool  *tools.Apktool
	Zipalign *tools.Zipalign
	Signer   *tools.Apksigner
	ADB      *tools.ADB
	Keytool  *tools.Keytool
	Keystore *keystoresvc.Service
	SDK      *manifest.Detector
	Pipeline *pipelinesvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	out := console.New(cfg.Verbose)

	runner := run.New(out.Debugf)
	if cfg.Timeout > 0 {
		runner.Timeout = cfg.Timeout
	}

	profile := config.Default()
	if cfg.ProfilePath != "" {
		var err error
		if profile, err = config.Load(cfg.ProfilePath); err != nil {
			return nil, err
		}
	}

	apktool := tools.NewApktool(runner)
	apktool.Bin = profile.Bin("apktool")
	zipalign := tools.NewZipalign(runner)
	zipalign.Bin = profile.Bin("zipalign")
	signer := tools.NewApksigner(runner)
	signer.Bin = profile.Bin("apksigner")
	adb := tools.NewADB(runner)
	adb.Bin = profile.Bin("adb")
	keytool := tools.NewKeytool(runner)
	keytool.Bin = profile.Bin("keytool")

	ksvc := keystoresvc.New(keytool, profile.Signing(), out)
	sdk := manifest.New()
	pipe := pipelinesvc.New(apktool, zipalign, signer, adb, ksvc, sdk, profile.Signing(), out)

	return &Wire{
		Out:      out,
		Runner:   runner,
		Profile:  profile,
		ToolBins: []string{apktool.Bin, zipalign.Bin, signer.Bin, adb.Bin, keytool.Bin},
		Apktool:  apktool,
		Zipalign: zipalign,
		Signer:   signer,
		ADB:      adb,
		Keytool:  keytool,
		Keystore: ksvc,
		SDK:      sdk,
		Pipeline: pipe,
	}, nil
}
