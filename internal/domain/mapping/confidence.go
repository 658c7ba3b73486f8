package mapping

// Confidence per maximum clinical trial phase reached for an indication.
// Phase 4 means approved and marketed; phase 0 means preclinical only.
var phaseConfidence = map[int]float64{
	0: 10,
	1: 30,
	2: 60,
	3: 80,
	4: 95,
}

// defaultConfidence applies when the phase is outside the known range.
const defaultConfidence = 50

// ConfidenceFromPhase translates a ChEMBL max trial phase into a 0-100
// confidence score.
func ConfidenceFromPhase(phase int) float64 {
	if c, ok := phaseConfidence[phase]; ok {
		return c
	}
	return defaultConfidence
}

// ConfidenceFromScore translates a DisGeNET association score (0..1) into a
// 0-100 confidence score, clamping out-of-range inputs.
func ConfidenceFromScore(score float64) float64 {
	return ClampConfidence(score * 100)
}

// ClampConfidence forces a score into [0, 100].
func ClampConfidence(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
