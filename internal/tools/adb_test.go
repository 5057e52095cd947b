package tools_test

import (
	"testing"

	"reforge/internal/tools"
)

func TestParseDevices_SkipsHeaderAndOffline(t *testing.T) {
	out := "List of devices attached\n" +
		"emulator-5554\tdevice\n" +
		"0a388e93\tunauthorized\n" +
		"ZX1G22ABCD\toffline\n" +
		"192.168.1.20:5555\tdevice\n" +
		"\n"

	devices := tools.ParseDevices(out)
	if len(devices) != 4 {
		t.Fatalf("want 4 devices, got %d: %+v", len(devices), devices)
	}

	var online int
	for _, d := range devices {
		if d.Online() {
			online++
		}
	}
	if online != 2 {
		t.Fatalf("want 2 online devices, got %d", online)
	}
	if devices[0].Serial != "emulator-5554" || devices[0].State != "device" {
		t.Fatalf("unexpected first device: %+v", devices[0])
	}
}

func TestParseDevices_EmptyList(t *testing.T) {
	if devices := tools.ParseDevices("List of devices attached\n\n"); len(devices) != 0 {
		t.Fatalf("want no devices, got %+v", devices)
	}
}

func TestParseDevices_CRLF(t *testing.T) {
	devices := tools.ParseDevices("List of devices attached\r\nemulator-5554\tdevice\r\n")
	if len(devices) != 1 || devices[0].Serial != "emulator-5554" {
		t.Fatalf("unexpected devices: %+v", devices)
	}
	if !devices[0].Online() {
		t.Fatalf("device should be online: %+v", devices[0])
	}
}
