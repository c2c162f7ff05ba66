// Package orbit simulates bodies on fixed circular orbits around a shared
// origin.
//
// Orbits lie flat in the XZ plane and are fully described by a radius, an
// angular speed and a phase, so advancing time is a closed-form update with
// no integration error:
//
//   - [Body]: one orbiting (or central) entity
//   - [System]: the ordered cast of bodies and the time multiplier
//
// A body is addressed only by its index in the system. Lookups with an index
// outside the cast return ok == false instead of panicking, since indices
// usually come from user selection.
package orbit
