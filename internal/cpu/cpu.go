// Package cpu reports processor capabilities for diagnostics and tooling.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities of the current process.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String lists the detected SIMD capabilities, or "generic" when none apply.
func (f Features) String() string {
	var parts []string
	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}
	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}
	if f.HasAVX512 {
		parts = append(parts, "avx512")
	}
	if f.HasNEON {
		parts = append(parts, "neon")
	}

	if len(parts) == 0 {
		return "generic"
	}

	return strings.Join(parts, ",")
}
