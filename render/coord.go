package render

// MapX converts a pixel column to the real coordinate of the plane:
// planeWidth·(x/rasterWidth − 0.5) + centerX.
// Column 0 maps to the left edge of the window.
func MapX(x int, centerX, planeWidth float64, rasterWidth int) float64 {
	return planeWidth*(float64(x)/float64(rasterWidth)-0.5) + centerX
}

// MapY converts a pixel row to the imaginary coordinate of the plane:
// planeHeight·(0.5 − y/rasterHeight) + centerY.
// Row 0 maps to the top edge of the window, so the axis is inverted.
func MapY(y int, centerY, planeHeight float64, rasterHeight int) float64 {
	return planeHeight*(0.5-float64(y)/float64(rasterHeight)) + centerY
}
