// ABOUTME: Coarse 3-way RPE classifier relative to a target.
// ABOUTME: Part of the public contract; load math uses the finer zone model.
package engine

// IntensityStatus is the coarse interpretation of an achieved RPE.
type IntensityStatus string

const (
	IntensityUnder    IntensityStatus = "UNDER"
	IntensityOnTarget IntensityStatus = "ON_TARGET"
	IntensityOver     IntensityStatus = "OVER"
)

// Classify maps an achieved RPE against a target RPE.
func Classify(actualRPE, targetRPE float64) IntensityStatus {
	switch {
	case actualRPE < targetRPE:
		return IntensityUnder
	case actualRPE > targetRPE:
		return IntensityOver
	default:
		return IntensityOnTarget
	}
}
