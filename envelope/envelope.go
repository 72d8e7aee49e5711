package envelope

// Stages holds the AHDSR stage lengths in beats and the sustain level.
type Stages struct {
	Attack  float64
	Hold    float64
	Decay   float64
	Sustain float64
	Release float64
}

// Amplitude evaluates the envelope at offset t beats into a span of
// totalSpan beats, returning a level in [0,1]. The release window anchors
// to the end of the span rather than immediately after decay, so short
// spans go straight from the decay level into release without a sustain
// plateau.
func Amplitude(t float64, s Stages, totalSpan float64) float64 {
	if t < 0 {
		return 0
	}
	// No attack stage: the boundary sample is full level, not silence.
	if s.Attack == 0 && t == 0 {
		return 1
	}
	if t < s.Attack {
		return clamp01(t / s.Attack)
	}

	holdEnd := s.Attack + s.Hold
	if t < holdEnd {
		return 1
	}

	decayEnd := holdEnd + s.Decay
	if t < decayEnd {
		frac := (t - holdEnd) / s.Decay
		return clamp01(1 + (s.Sustain-1)*frac)
	}

	releaseStart := decayEnd
	if totalSpan-s.Release > releaseStart {
		releaseStart = totalSpan - s.Release
	}
	if t < releaseStart {
		return clamp01(s.Sustain)
	}
	if s.Release > 0 && t < releaseStart+s.Release {
		frac := (t - releaseStart) / s.Release
		return clamp01(s.Sustain * (1 - frac))
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
