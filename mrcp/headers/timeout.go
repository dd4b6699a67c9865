package headers

// NormalizeSilenceTimeout maps a raw Speech-Complete-Timeout value to the silence timeout
// in milliseconds:
//
//	0..1  -> 1000
//	2..4  -> value * 1000
//	5..20 -> 1200
//	21..  -> value
//
// Values up to 4 are taken as seconds, the whole 5..20 range maps to 1200.
func NormalizeSilenceTimeout(v uint) uint {
	switch {
	case v <= 1:
		return 1000
	case v <= 4:
		return v * 1000
	case v <= 20:
		return 1200
	default:
		return v
	}
}
