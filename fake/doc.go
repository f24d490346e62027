// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake collaborators for allocator testing: a simulated address space with
// failure injection, a fixed-size topology, and a recording registry.
// Behavior is deterministic and fully introspectable.
package fake
