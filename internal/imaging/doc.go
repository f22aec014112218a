// Package imaging loads, copies, previews and writes the images the grid
// tools work on.
//
// # Coordinate System
//
// Coordinates passed into this package are absolute image coordinates:
// X increases rightward, Y increases downward, and an image whose Bounds()
// does not start at (0,0) is addressed from Bounds().Min. Images produced
// here (Clone, previews) always start at (0,0).
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are shared
// and must not be drawn on; take a Clone first.
//
// # Formats
//
// Decoding supports PNG, JPEG and GIF from the standard library and BMP and
// TIFF from golang.org/x/image. Encoding and saving go through
// github.com/disintegration/imaging, which picks the format from the file
// extension.
package imaging
