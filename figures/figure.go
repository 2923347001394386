package figures

import "image"

// Figure is anything that can render itself to a raster image. The real
// plotting toolkit's figure type satisfies this; so does the Canvas test
// figure in this package.
type Figure interface {
	Render() (image.Image, error)
}

// Closer is implemented by figures that hold resources. The registry calls
// Close when it drains figures after a test.
type Closer interface {
	Close() error
}
