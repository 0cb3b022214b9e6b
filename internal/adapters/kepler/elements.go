package kepler

import "go.stellium.dev/stellium/internal/core/domain"

// orbitalElements holds J2000 Keplerian mean elements and their centennial
// rates: semi-major axis (au), eccentricity, inclination, mean longitude,
// longitude of perihelion, and longitude of the ascending node (degrees).
// Values follow Standish's approximation for the major planets, valid for
// 1800-2050.
type orbitalElements struct {
	a, e, i, l, lp, node       float64
	da, de, di, dl, dlp, dnode float64
}

// at returns the elements propagated to t Julian centuries from J2000.
func (el orbitalElements) at(t float64) (a, e, i, l, lp, node float64) {
	return el.a + el.da*t,
		el.e + el.de*t,
		el.i + el.di*t,
		el.l + el.dl*t,
		el.lp + el.dlp*t,
		el.node + el.dnode*t
}

// embElements is the Earth-Moon barycenter, used both for the Sun's
// geocentric position and to reduce planet positions to geocentric.
var embElements = orbitalElements{
	a: 1.00000261, e: 0.01671123, i: -0.00001531,
	l: 100.46457166, lp: 102.93768193, node: 0.0,
	da: 0.00000562, de: -0.00004392, di: -0.01294668,
	dl: 35999.37244981, dlp: 0.32327364, dnode: 0.0,
}

var planetElements = map[domain.Body]orbitalElements{
	domain.Mercury: {
		a: 0.38709927, e: 0.20563593, i: 7.00497902,
		l: 252.25032350, lp: 77.45779628, node: 48.33076593,
		da: 0.00000037, de: 0.00001906, di: -0.00594749,
		dl: 149472.67411175, dlp: 0.16047689, dnode: -0.12534081,
	},
	domain.Venus: {
		a: 0.72333566, e: 0.00677672, i: 3.39467605,
		l: 181.97909950, lp: 131.60246718, node: 76.67984255,
		da: 0.00000390, de: -0.00004107, di: -0.00078890,
		dl: 58517.81538729, dlp: 0.00268329, dnode: -0.27769418,
	},
	domain.Mars: {
		a: 1.52371034, e: 0.09339410, i: 1.84969142,
		l: -4.55343205, lp: -23.94362959, node: 49.55953891,
		da: 0.00001847, de: 0.00007882, di: -0.00813131,
		dl: 19140.30268499, dlp: 0.44441088, dnode: -0.29257343,
	},
	domain.Jupiter: {
		a: 5.20288700, e: 0.04838624, i: 1.30439695,
		l: 34.39644051, lp: 14.72847983, node: 100.47390909,
		da: -0.00011607, de: -0.00013253, di: -0.00183714,
		dl: 3034.74612775, dlp: 0.21252668, dnode: 0.20469106,
	},
	domain.Saturn: {
		a: 9.53667594, e: 0.05386179, i: 2.48599187,
		l: 49.95424423, lp: 92.59887831, node: 113.66242448,
		da: -0.00125060, de: -0.00050991, di: 0.00193609,
		dl: 1222.49362201, dlp: -0.41897216, dnode: -0.28867794,
	},
	domain.Uranus: {
		a: 19.18916464, e: 0.04725744, i: 0.77263783,
		l: 313.23810451, lp: 170.95427630, node: 74.01692503,
		da: -0.00196176, de: -0.00004397, di: -0.00242939,
		dl: 428.48202785, dlp: 0.40805281, dnode: 0.04240589,
	},
	domain.Neptune: {
		a: 30.06992276, e: 0.00859048, i: 1.77004347,
		l: -55.12002969, lp: 44.96476227, node: 131.78422574,
		da: 0.00026291, de: 0.00005105, di: 0.00035372,
		dl: 218.45945325, dlp: -0.32241464, dnode: -0.00508664,
	},
	domain.Pluto: {
		a: 39.48211675, e: 0.24882730, i: 17.14001206,
		l: 238.92903833, lp: 224.06891629, node: 110.30393684,
		da: -0.00031596, de: 0.00005170, di: 0.00004818,
		dl: 145.20780515, dlp: -0.04062942, dnode: -0.01183482,
	},
}
