package tools

import (
	"context"

	"reforge/internal/domain"
)

// alignment is the 4-byte boundary required for uncompressed APK entries.
const alignment = "4"

// Zipalign aligns APK zip entries and checks existing alignment.
type Zipalign struct {
	Bin    string
	Runner domain.Runner
}

func NewZipalign(r domain.Runner) *Zipalign {
	return &Zipalign{Bin: "zipalign", Runner: r}
}

// Align writes an aligned copy of in to out.
func (z *Zipalign) Align(ctx context.Context, in, out string) error {
	return z.Runner.Run(ctx, z.Bin, "-v", alignment, in, out)
}

// Check verifies that apk is already aligned.
func (z *Zipalign) Check(ctx context.Context, apk string) error {
	return z.Runner.Run(ctx, z.Bin, "-c", alignment, apk)
}

var _ domain.Aligner = (*Zipalign)(nil)
