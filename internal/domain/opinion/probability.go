package opinion

import "watchfloor/internal/domain/operation"

func BacklashProbability(severity, awareness, anger int) float64 {
	p := float64(severity) / 10 * (1 + float64(awareness+anger)/200)
	return operation.ClampProbability(p)
}

func StanceMultiplier(stance operation.Stance) float64 {
	switch stance {
	case operation.StanceCritical:
		return 1.5
	case operation.StanceIndependent:
		return 1.0
	case operation.StanceStateFriendly:
		return 0.3
	default:
		return 1.0
	}
}

func NewsProbability(severity, awareness int, stance operation.Stance) float64 {
	p := float64(severity)/10*StanceMultiplier(stance) + float64(awareness)/200
	return operation.ClampProbability(p)
}

func ProtestProbability(severity, anger int) float64 {
	s := float64(severity) / 10
	var p float64
	switch {
	case anger < 20:
		if severity >= 8 {
			p = 0.15
		}
	case anger < 40:
		if severity >= 6 {
			p = s * 0.5
		}
	case anger < 60:
		p = s * (1 + float64(anger)/100)
	default:
		p = s * (1 + float64(anger)/50)
	}
	return operation.ClampProbability(p)
}
