package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Okhsl bounds.
const (
	MaxSaturation = 1.0
	MaxLightness  = 1.0
)

// Hsl is a color in the Okhsl space: Hue in degrees [0,360), Saturation and
// Lightness in [0,1].
type Hsl struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// IsDark reports whether Lightness is below one half. Exactly 0.5 is not dark.
func (h Hsl) IsDark() bool {
	return h.Lightness < 0.5
}

// Mix linearly interpolates every channel towards o, hue included: mixing
// 350 and 10 passes through 180.
func (h Hsl) Mix(o Hsl, factor float64) Hsl {
	return Hsl{
		Hue:        normalizeHue(h.Hue + (o.Hue-h.Hue)*factor),
		Saturation: h.Saturation + (o.Saturation-h.Saturation)*factor,
		Lightness:  h.Lightness + (o.Lightness-h.Lightness)*factor,
	}
}

func normalizeHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// The conversions below follow Björn Ottosson's Okhsl construction: OkLab
// lightness passed through a toe function, chroma rescaled against the sRGB
// gamut boundary for the hue.

type lab struct{ L, a, b float64 }

type lc struct{ L, C float64 }

type st struct{ S, T float64 }

// linearSrgbToOklab and oklabToLinearSrgb use the direct LMS matrices. The
// route through XYZ that colorful.OkLab takes is not an exact inverse pair
// and gives neutral grays a small chroma, which the gamut fits below amplify.
func linearSrgbToOklab(r, g, b float64) lab {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return lab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		a: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		b: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

func oklabToLinearSrgb(c lab) (r, g, b float64) {
	lp := c.L + 0.3963377774*c.a + 0.2158037573*c.b
	mp := c.L - 0.1055613458*c.a - 0.0638541728*c.b
	sp := c.L - 0.0894841775*c.a - 1.2914855480*c.b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}

// maxSaturation finds the largest S = C/L for which the hue (a, b), with a
// and b normalized so a²+b² = 1, stays inside the sRGB gamut.
func maxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// red component hits zero first
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		// green
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// blue
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	S := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	// one Halley step
	lp := 1 + S*kl
	mp := 1 + S*km
	sp := 1 + S*ks

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	ldS := 3 * kl * lp * lp
	mdS := 3 * km * mp * mp
	sdS := 3 * ks * sp * sp

	ldS2 := 6 * kl * kl * lp
	mdS2 := 6 * km * km * mp
	sdS2 := 6 * ks * ks * sp

	f := wl*l + wm*m + ws*s
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return S - f*f1/(f1*f1-0.5*f*f2)
}

func findCusp(a, b float64) lc {
	sCusp := maxSaturation(a, b)
	r, g, bl := oklabToLinearSrgb(lab{L: 1, a: sCusp * a, b: sCusp * b})
	lCusp := math.Cbrt(1 / math.Max(math.Max(r, g), bl))
	return lc{L: lCusp, C: lCusp * sCusp}
}

// gamutIntersection returns t such that the line from (L0, 0) to (L1, C1)
// leaves the sRGB gamut at L0*(1-t) + t*L1, t*C1.
func gamutIntersection(a, b, L1, C1, L0 float64, cusp lc) float64 {
	if (L1-L0)*cusp.C-(cusp.L-L0)*C1 <= 0 {
		// lower half
		return cusp.C * L0 / (C1*cusp.L + cusp.C*(L0-L1))
	}

	// upper half: first intersect with the triangle, then refine
	t := cusp.C * (L0 - 1) / (C1*(cusp.L-1) + cusp.C*(L0-L1))

	dL := L1 - L0
	dC := C1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := L0*(1-t) + t*L1
	C := t * C1

	lp := L + C*kl
	mp := L + C*km
	sp := L + C*ks

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	dl := 3 * ldt * lp * lp
	dm := 3 * mdt * mp * mp
	ds := 3 * sdt * sp * sp

	dl2 := 6 * ldt * ldt * lp
	dm2 := 6 * mdt * mdt * mp
	ds2 := 6 * sdt * sdt * sp

	halley := func(wl, wm, ws float64) float64 {
		v := wl*l + wm*m + ws*s - 1
		v1 := wl*dl + wm*dm + ws*ds
		v2 := wl*dl2 + wm*dm2 + ws*ds2
		u := v1 / (v1*v1 - 0.5*v*v2)
		if u < 0 {
			return math.MaxFloat64
		}
		return -v * u
	}

	tr := halley(4.0767416621, -3.3077115913, 0.2309699292)
	tg := halley(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := halley(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + math.Min(tr, math.Min(tg, tb))
}

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

func toe(x float64) float64 {
	return 0.5 * (toeK3*x - toeK1 + math.Sqrt((toeK3*x-toeK1)*(toeK3*x-toeK1)+4*toeK2*toeK3*x))
}

func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

func toST(cusp lc) st {
	return st{S: cusp.C / cusp.L, T: cusp.C / (1 - cusp.L)}
}

// stMid is a polynomial fit of a smooth approximation of the cusp, used to
// keep saturation perceptually even across hues.
func stMid(a, b float64) st {
	S := 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	T := 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))

	return st{S: S, T: T}
}

type chromas struct{ c0, cMid, cMax float64 }

func chromaBounds(L, a, b float64) chromas {
	cusp := findCusp(a, b)

	cMax := gamutIntersection(a, b, L, 1, L, cusp)
	stMax := toST(cusp)

	k := cMax / math.Min(L*stMax.S, (1-L)*stMax.T)

	mid := stMid(a, b)
	ca := L * mid.S
	cb := (1 - L) * mid.T
	cMid := 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 := math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return chromas{c0: c0, cMid: cMid, cMax: cMax}
}

const (
	satMid    = 0.8
	satMidInv = 1.25
)

func srgbToOkhsl(c colorful.Color) Hsl {
	ok := linearSrgbToOklab(c.LinearRgb())

	C := math.Sqrt(ok.a*ok.a + ok.b*ok.b)
	a := ok.a / C
	b := ok.b / C

	L := ok.L
	h := 0.5 + 0.5*math.Atan2(-ok.b, -ok.a)/math.Pi

	cs := chromaBounds(L, a, b)

	var s float64
	if C < cs.cMid {
		k1 := satMid * cs.c0
		k2 := 1 - k1/cs.cMid

		t := C / (k1 + k2*C)
		s = t * satMid
	} else {
		k0 := cs.cMid
		k1 := (1 - satMid) * cs.cMid * cs.cMid * satMidInv * satMidInv / cs.c0
		k2 := 1 - k1/(cs.cMax-cs.cMid)

		t := (C - k0) / (k1 + k2*(C-k0))
		s = satMid + (1-satMid)*t
	}

	return Hsl{
		Hue:        normalizeHue(h * 360),
		Saturation: s,
		Lightness:  toe(L),
	}
}

func okhslToSrgb(hsl Hsl) colorful.Color {
	l := hsl.Lightness
	switch {
	case l >= 1:
		return colorful.Color{R: 1, G: 1, B: 1}
	case l <= 0:
		return colorful.Color{}
	}

	h := hsl.Hue / 360
	s := hsl.Saturation
	a := math.Cos(2 * math.Pi * h)
	b := math.Sin(2 * math.Pi * h)
	L := toeInv(l)

	cs := chromaBounds(L, a, b)

	var C float64
	if s < satMid {
		t := satMidInv * s

		k1 := satMid * cs.c0
		k2 := 1 - k1/cs.cMid

		C = t * k1 / (1 - k2*t)
	} else {
		t := (s - satMid) / (1 - satMid)

		k0 := cs.cMid
		k1 := (1 - satMid) * cs.cMid * cs.cMid * satMidInv * satMidInv / cs.c0
		k2 := 1 - k1/(cs.cMax-cs.cMid)

		C = k0 + t*k1/(1-k2*t)
	}

	return colorful.LinearRgb(oklabToLinearSrgb(lab{L: L, a: C * a, b: C * b}))
}
