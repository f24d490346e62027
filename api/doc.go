// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the silo library: piece descriptors for multi-node
// arrays, the platform memory primitive surface, NUMA topology translation,
// and the pointer-tracking registry. Implementations live in mem/, topology/
// and registry/; fakes for testing live in fake/.
package api
