package necklace

// Alpha maps each colour to the number of its beads required on the positive side.
type Alpha map[string]int

// UnitAlpha returns the alpha vector with value 1 for every colour of nk.
func UnitAlpha(nk *Necklace) Alpha {
	a := make(Alpha, nk.NumColours())
	for _, c := range nk.colours {
		a[c] = 1
	}
	return a
}

// ValidateAlpha checks that alpha has a value in [1, Total(c)] for every colour c.
// Extra keys for colours absent from nk are ignored.
//
// Errors:
//   - ErrAlphaMissing, ErrAlphaRange (both match ErrInvalidAlpha).
func (nk *Necklace) ValidateAlpha(alpha Alpha) error {
	for _, c := range nk.colours {
		v, ok := alpha[c]
		if !ok {
			return necklaceErrorf("ValidateAlpha", ErrAlphaMissing, "no value for colour %q", c)
		}
		if total := nk.Total(c); v < 1 || v > total {
			return necklaceErrorf("ValidateAlpha", ErrAlphaRange, "alpha[%q] must be within [1, %d], but is %d", c, total, v)
		}
	}
	return nil
}

// NegAlpha returns the complementary vector total(c) - alpha[c] + 1 for every colour of nk.
func (nk *Necklace) NegAlpha(alpha Alpha) Alpha {
	neg := make(Alpha, nk.NumColours())
	for _, c := range nk.colours {
		neg[c] = nk.Total(c) - alpha[c] + 1
	}
	return neg
}

// Restrict returns the entries of alpha for the colours of nk only.
func (nk *Necklace) Restrict(alpha Alpha) Alpha {
	out := make(Alpha, nk.NumColours())
	for _, c := range nk.colours {
		if v, ok := alpha[c]; ok {
			out[c] = v
		}
	}
	return out
}
