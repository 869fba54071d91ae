package bits

import stdbits "math/bits"

// Required returns the number of bits needed to serialize an integer
// value in [min,max]: 0 if min == max, otherwise
// floor(log2(max-min)) + 1.
func Required(min, max uint32) int {
	if min == max {
		return 0
	}
	return 32 - stdbits.LeadingZeros32(max-min)
}
