//go:build !rectface

package app

import "watchface/face"

// DefaultShape is the face shape chosen at build time; build with
// -tags rectface for the rectangular face.
const DefaultShape = face.KindCircular
