// File: mem/mem.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral entry point. The concrete backend is selected at compile
// time through platform-specific factory files guarded by build tags.

package mem

import "github.com/momentics/silo/api"

// Default returns the platform memory backend for this OS.
func Default() api.PlatformMemory {
	return createPlatformMemory()
}
