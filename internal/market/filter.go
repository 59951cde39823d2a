package market

// NoisePolicy is a per-vendor liquidity filter. Each provider declares its
// own policy explicitly: the alpaca path filters, the polygon path does not.
// Keeping the policy named per vendor makes that asymmetry visible instead
// of an implicit code-path difference.
type NoisePolicy struct {
	Enabled bool

	// MeanFraction scales the mean volume of the fetched window into the
	// liquidity threshold for sub-daily bars.
	MeanFraction float64

	// DailyFloor replaces the mean-based threshold entirely when the window
	// was fetched at daily granularity.
	DailyFloor int64
}

// DefaultNoisePolicy drops bars trading below 20% of the window's mean
// volume, or below a fixed 100k-unit floor for daily bars.
func DefaultNoisePolicy() NoisePolicy {
	return NoisePolicy{
		Enabled:      true,
		MeanFraction: 0.2,
		DailyFloor:   100_000,
	}
}

// DisabledNoisePolicy passes every bar through untouched.
func DisabledNoisePolicy() NoisePolicy {
	return NoisePolicy{}
}

// Threshold returns the minimum volume a bar must carry to survive the
// filter. An empty window yields zero, making the filter a no-op.
func (p NoisePolicy) Threshold(bars []Bar, tf Timeframe) float64 {
	if tf == TimeframeDay {
		return float64(p.DailyFloor)
	}
	if len(bars) == 0 {
		return 0
	}
	var sum float64
	for _, b := range bars {
		sum += float64(b.Volume)
	}
	mean := sum / float64(len(bars))
	return mean * p.MeanFraction
}

// Apply drops bars whose volume falls strictly below the policy threshold.
// Relative order of the surviving bars is preserved.
func (p NoisePolicy) Apply(bars []Bar, tf Timeframe) []Bar {
	if !p.Enabled || len(bars) == 0 {
		return bars
	}
	threshold := p.Threshold(bars, tf)
	out := make([]Bar, 0, len(bars))
	for _, b := range bars {
		if float64(b.Volume) < threshold {
			continue
		}
		out = append(out, b)
	}
	return out
}
