// Package analysis inspects recorded runs.
//
//   - [PowerSpectrum] and [DominantPeriod]: frequency content of a sampled
//     series, used to check that a body's period matches 2π/(speed·scale)
//   - [Circularity]: how far a recorded track strays from a circle
//   - [TrackToASCII]: a quick text plot of a body's path in the orbital plane
package analysis
