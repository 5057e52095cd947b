package domain

// Phase names one step of the rebuild pipeline.
type Phase string

const (
	PhaseRebuild Phase = "rebuild"
	PhaseAlign   Phase = "align"
	PhaseSign    Phase = "sign"
	PhaseVerify  Phase = "verify"
	PhaseInstall Phase = "install"
)

// SigningProfile carries the keystore credentials passed to apksigner and
// keytool. The zero value is not usable; DebugProfile returns the stock
// Android debug identity.
type SigningProfile struct {
	Alias     string
	StorePass string
	KeyPass   string
}

// DebugProfile returns the credentials of the standard Android debug
// keystore, the identity local installs are signed with by convention.
func DebugProfile() SigningProfile {
	return SigningProfile{
		Alias:     "androiddebugkey",
		StorePass: "android",
		KeyPass:   "android",
	}
}

// Device is one row of `adb devices` output.
type Device struct {
	Serial string
	State  string
}

// Online reports whether the device accepts installs.
func (d Device) Online() bool { return d.State == "device" }
