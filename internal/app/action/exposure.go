package action

import "watchfloor/internal/domain/operation"

var exposureThresholds = []struct {
	Awareness  int
	Reluctance int
}{
	{Awareness: 50, Reluctance: 60},
	{Awareness: 70, Reluctance: 75},
	{Awareness: 85, Reluctance: 90},
}

// nextExposureStage returns the next stage to fire, or 0. Stages fire one
// at a time and in order.
func nextExposureStage(current, awareness, reluctance int) int {
	if current >= len(exposureThresholds) {
		return 0
	}
	t := exposureThresholds[current]
	if awareness >= t.Awareness || reluctance >= t.Reluctance {
		return current + 1
	}
	return 0
}

// exposureChannel prefers a critical outlet; leaks with no outlet left carry
// no channel id.
func exposureChannel(channels []operation.NewsChannel) operation.NewsChannel {
	var fallback *operation.NewsChannel
	for i := range channels {
		ch := channels[i]
		if ch.Banned {
			continue
		}
		if ch.Stance == operation.StanceCritical {
			return ch
		}
		if fallback == nil {
			fallback = &channels[i]
		}
	}
	if fallback != nil {
		return *fallback
	}
	return operation.NewsChannel{}
}
