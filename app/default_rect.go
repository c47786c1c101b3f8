//go:build rectface

package app

import "watchface/face"

// DefaultShape is the face shape chosen at build time.
const DefaultShape = face.KindRectangular
