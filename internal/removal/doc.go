// Package removal strips a reference grid from a plot and reconnects the
// curves the grid crossed.
//
// Remove ties the other packages together: grid lines come from
// internal/detection (or the caller), dark pixels on those lines are painted
// white in a clone of the image and reported to an internal/healer Healer,
// and the healer then draws short connecting strokes across the gaps.
package removal
