package filters

// ITU-R BT.601 RGB <-> YUV on normalized [0, 1] channels. The inverse is
// the published one, not the exact matrix inverse, so a round trip can be off
// by a fraction of a unit.
var (
	rgbToYUV = [3][3]float64{
		{0.299, 0.587, 0.114},
		{-0.14713, -0.28886, 0.436},
		{0.615, -0.51499, -0.10001},
	}
	yuvToRGB = [3][3]float64{
		{1, 0, 1.13983},
		{1, -0.39465, -0.58060},
		{1, 2.03211, 0},
	}
)

func mul(m *[3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// RGBToYUV converts normalized RGB to Y (luma) and U, V (chroma).
func RGBToYUV(r, g, b float64) (y, u, v float64) {
	return mul(&rgbToYUV, r, g, b)
}

// YUVToRGB converts back to normalized RGB. Results are not clamped.
func YUVToRGB(y, u, v float64) (r, g, b float64) {
	return mul(&yuvToRGB, y, u, v)
}
