// Package hsl converts between RGB and the HSL color model.
//
// Hue is expressed in degrees; saturation and lightness are normalized
// float32 values in [0, 1]. The conversions follow the standard
// hexcone model (CSS Color Module Level 3, section 4.2.4).
package hsl

// FromRGB converts normalized RGB components to (hue, saturation,
// lightness). Hue is in [0, 360); achromatic colors report hue 0 and
// saturation 0.
func FromRGB(r, g, b float32) (h, s, l float32) {
	mx := max3(r, g, b)
	mn := min3(r, g, b)
	l = (mx + mn) / 2

	d := mx - mn
	if d == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}

	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

// ToRGB converts (hue, saturation, lightness) to normalized RGB
// components. Hue may be any value; it is wrapped into [0, 360).
func ToRGB(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	h = wrapHue(h) / 360
	r = hueToChannel(p, q, h+1.0/3)
	g = hueToChannel(p, q, h)
	b = hueToChannel(p, q, h-1.0/3)
	return r, g, b
}

// hueToChannel resolves one RGB channel from the hexcone parameters.
func hueToChannel(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// wrapHue maps any hue angle into [0, 360).
func wrapHue(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
