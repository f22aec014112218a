// Package healer reconnects foreground curves that were cut when a reference
// grid was erased from a binary image.
//
// A Healer classifies every pixel of a source image as background or
// foreground, then receives the coordinates of erased grid pixels one at a
// time through ErasePixel. Each erased pixel promotes its untouched foreground
// neighbours to "adjacent" candidates. Heal then runs two phases over the
// grid:
//
//  1. Grouping: every 8-connected set of adjacent pixels becomes one boundary
//     group with a centroid (mean row and column) and a representative pixel
//     (the pixel where the group's fill started).
//  2. Connecting: for every pair of groups whose centroids are closer than the
//     configured close distance, a straight line is rasterized between their
//     representative pixels, both in the grid (as healed pixels) and in the
//     destination image (in the foreground color).
//
// # Coordinate System
//
// Grid coordinates are (row, col) offsets from the source image's
// Bounds().Min, so row 0 / col 0 is always the top-left pixel whatever the
// image origin. The destination image passed to Heal is addressed the same way
// relative to its own bounds.
//
// # Preconditions
//
// A Healer is single use and not safe for concurrent use. Violated
// preconditions (zero-sized images, out-of-range coordinates, a second Heal,
// a destination of the wrong size) are programming errors and panic.
package healer
