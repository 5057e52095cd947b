package tools

import (
	"context"
	"strings"

	"reforge/internal/domain"
)

// ADB lists connected devices and installs APKs on them.
type ADB struct {
	Bin    string
	Runner domain.Runner
}

func NewADB(r domain.Runner) *ADB {
	return &ADB{Bin: "adb", Runner: r}
}

// Devices returns every device adb reports, whatever its state.
func (a *ADB) Devices(ctx context.Context) ([]domain.Device, error) {
	out, err := a.Runner.Output(ctx, a.Bin, "devices")
	if err != nil {
		return nil, err
	}
	return ParseDevices(string(out)), nil
}

// Install replace-installs apk on the device with the given serial.
func (a *ADB) Install(ctx context.Context, serial, apk string) error {
	return a.Runner.Run(ctx, a.Bin, "-s", serial, "install", "-r", apk)
}

// ParseDevices parses `adb devices` output. The first line is a header;
// each following non-empty line is "<serial>\t<state>".
func ParseDevices(out string) []domain.Device {
	lines := strings.Split(out, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	var devices []domain.Device
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		devices = append(devices, domain.Device{
			Serial: strings.TrimSpace(fields[0]),
			State:  strings.TrimSpace(fields[1]),
		})
	}
	return devices
}

var _ domain.Installer = (*ADB)(nil)
