// Package core holds small numeric helpers shared by the blend and smooth
// packages: range clamping, finiteness checks, 8-bit mix-weight conversion
// and scratch buffer reuse.
package core
