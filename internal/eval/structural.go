package eval

import "github.com/varbench/varbench/internal/vcf"

// structuralMatch searches the predicted index for the best breakpoint
// match of a structural truth variant.
//
// Candidates lie within ±maxBreakpointDistance of the truth position,
// share the truth variant's type, and have at least one (truth alt,
// predicted alt) pair whose length gains (reference length minus alternate
// length) differ by strictly less than maxLengthDifference. Among
// candidates the one with minimum |position distance| wins; equal
// distances break toward the lower position. Returns (0, false) when no
// candidate qualifies, which is not an error condition.
func structuralMatch(truth *vcf.Variant, predicted *PositionIndex, maxBreakpointDistance, maxLengthDifference int) (int64, bool) {
	truthType := ClassifyVariant(truth)
	truthPos := truth.Pos

	bestPos := int64(0)
	bestDist := int64(-1)
	for _, pos := range predicted.Range(truthPos-int64(maxBreakpointDistance), truthPos+int64(maxBreakpointDistance)) {
		candidate := predicted.Get(pos)
		if ClassifyVariant(candidate) != truthType {
			continue
		}
		if !lengthGainsCompatible(truth, candidate, maxLengthDifference) {
			continue
		}
		dist := truthPos - pos
		if dist < 0 {
			dist = -dist
		}
		// Range iterates ascending, so on equal distance the first (lower)
		// position is kept.
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestPos = pos
		}
	}
	return bestPos, bestDist >= 0
}

// lengthGainsCompatible reports whether any allele pairing of the two
// variants has length gains within the tolerance.
func lengthGainsCompatible(truth, predicted *vcf.Variant, maxLengthDifference int) bool {
	truthRefLen := len(truth.Ref)
	predictedRefLen := len(predicted.Ref)
	for _, truthAlt := range truth.Alts {
		truthGain := truthRefLen - len(truthAlt)
		for _, predictedAlt := range predicted.Alts {
			predictedGain := predictedRefLen - len(predictedAlt)
			if truthGain-maxLengthDifference < predictedGain && predictedGain < truthGain+maxLengthDifference {
				return true
			}
		}
	}
	return false
}
