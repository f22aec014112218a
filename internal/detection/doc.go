// Package detection finds the reference grid printed under a plotted curve.
//
// Grid lines on scanned plots are long, straight and axis aligned, while the
// data curves wander. DetectGridLines exploits that with a projection
// profile: threshold the image, count dark pixels per row and per column, and
// keep the rows and columns whose dark fraction reaches a minimum coverage.
//
// # Coordinate System
//
// Results use absolute image coordinates:
//   - X increases rightward, Y increases downward
//   - an image whose Bounds() does not start at (0,0) reports lines offset
//     by Bounds().Min
//
// # Confidence
//
// GridLines.Confidence is the mean coverage of the detected lines. A clean
// printed grid scores close to 1.0; values near the minimum coverage usually
// mean a faint or broken grid, or a curve mistaken for one.
//
// # Limitations
//
// Only axis-aligned lines are found. Skewed scans need deskewing first.
package detection
