// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform facts relevant to ring placement.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// CacheLineSize is the padding unit used by ring.Synced on this platform.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// RegisterPlatformProbes sets platform debug metrics.
func RegisterPlatformProbes(dp api.Debug) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.cache_line", func() any {
		return CacheLineSize
	})
}
