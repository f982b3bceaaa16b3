package flight

import (
	"fmt"

	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// ReasonCode is a stable, machine-distinguishable identifier for a violated
// validation rule. Codes are part of the public contract and never renamed.
type ReasonCode string

const (
	ReasonMassRequired        ReasonCode = "mass_required"
	ReasonMassMustBePositive  ReasonCode = "mass_must_be_positive"
	ReasonStepsEmpty          ReasonCode = "steps_empty"
	ReasonMustStartWithLaunch ReasonCode = "must_start_with_launch"
	ReasonMustEndWithLand     ReasonCode = "must_end_with_land"
	ReasonMustAlternate       ReasonCode = "must_alternate"
	ReasonLaunchBodyMismatch  ReasonCode = "launch_body_mismatch"
	ReasonUnknownBody         ReasonCode = "unknown_body"
)

// Fields a violation is attributed to
const (
	FieldMass      = "mass"
	FieldManeuvers = "maneuvers"
)

// Violation is one violated rule with its human-readable message
type Violation struct {
	Code    ReasonCode
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationResult reports whether a flight path is calculable. Invalid
// results carry every violation that fired, in a fixed order: mass violations
// first, then sequence violations (empty, start, end, alternate, relaunch
// mismatch, unknown body).
type ValidationResult struct {
	Violations []Violation
}

// IsValid returns true when no rule fired
func (r ValidationResult) IsValid() bool {
	return len(r.Violations) == 0
}

// Codes returns the violation codes in report order
func (r ValidationResult) Codes() []ReasonCode {
	codes := make([]ReasonCode, len(r.Violations))
	for i, v := range r.Violations {
		codes[i] = v.Code
	}
	return codes
}

// Has checks if a specific rule fired
func (r ValidationResult) Has(code ReasonCode) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// PathValidator decides whether a (mass, maneuvers) pair is physically
// coherent enough to cost. It is a stateless domain service: every call is a
// pure function of its arguments, invalid input is reported as data and never
// as an error.
//
// Rules, each evaluated independently (no short-circuiting between them):
//
//   - mass must be present and strictly positive; absence is terminal for the
//     mass field, so at most one mass violation is reported
//   - the maneuver sequence must be non-empty
//   - the first maneuver must be a launch, the last a landing
//   - consecutive maneuvers must alternate launch/land
//   - a launch must depart from the body of the preceding landing
//   - every maneuver's body must be in the gravity table
//
// The positional rules are only evaluated on non-empty sequences. Scanning
// rules report a single violation no matter how many pairs break them.
type PathValidator struct{}

// NewPathValidator creates a new validator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// Validate checks a flight path for calculability. A nil mass means the host
// never collected one.
func (pv *PathValidator) Validate(mass *int, maneuvers []shared.Maneuver) ValidationResult {
	var violations []Violation

	switch {
	case mass == nil:
		violations = append(violations, Violation{
			Code:    ReasonMassRequired,
			Field:   FieldMass,
			Message: "mass is required",
		})
	case *mass <= 0:
		violations = append(violations, Violation{
			Code:    ReasonMassMustBePositive,
			Field:   FieldMass,
			Message: fmt.Sprintf("mass must be a positive number of kilograms, got %d", *mass),
		})
	}

	if len(maneuvers) == 0 {
		violations = append(violations, Violation{
			Code:    ReasonStepsEmpty,
			Field:   FieldManeuvers,
			Message: "flight path has no maneuvers",
		})
		return ValidationResult{Violations: violations}
	}

	if maneuvers[0].Action != shared.ActionLaunch {
		violations = append(violations, Violation{
			Code:    ReasonMustStartWithLaunch,
			Field:   FieldManeuvers,
			Message: "flight path must start with a launch",
		})
	}

	// A single maneuver can never close a trip: the final landing must be
	// distinct from the opening launch
	if maneuvers[len(maneuvers)-1].Action != shared.ActionLand || len(maneuvers) == 1 {
		violations = append(violations, Violation{
			Code:    ReasonMustEndWithLand,
			Field:   FieldManeuvers,
			Message: "flight path must end with a landing",
		})
	}

	if !alternates(maneuvers) {
		violations = append(violations, Violation{
			Code:    ReasonMustAlternate,
			Field:   FieldManeuvers,
			Message: "launches and landings must alternate",
		})
	}

	if body, ok := relaunchMismatch(maneuvers); ok {
		violations = append(violations, Violation{
			Code:    ReasonLaunchBodyMismatch,
			Field:   FieldManeuvers,
			Message: fmt.Sprintf("you can only launch from the body you last landed on (%s)", body),
		})
	}

	if body, ok := unknownBody(maneuvers); ok {
		violations = append(violations, Violation{
			Code:    ReasonUnknownBody,
			Field:   FieldManeuvers,
			Message: fmt.Sprintf("body %q is not in the gravity table", body),
		})
	}

	return ValidationResult{Violations: violations}
}

// alternates checks that no two consecutive maneuvers share an action
func alternates(maneuvers []shared.Maneuver) bool {
	for i := 1; i < len(maneuvers); i++ {
		if maneuvers[i].Action == maneuvers[i-1].Action {
			return false
		}
	}
	return true
}

// relaunchMismatch scans land→launch pairs and returns the first body that
// was landed on but not launched from
func relaunchMismatch(maneuvers []shared.Maneuver) (shared.Body, bool) {
	for i := 1; i < len(maneuvers); i++ {
		prev, curr := maneuvers[i-1], maneuvers[i]
		if prev.Action == shared.ActionLand && curr.Action == shared.ActionLaunch && prev.Body != curr.Body {
			return prev.Body, true
		}
	}
	return 0, false
}

// unknownBody returns the first maneuver body outside the gravity table
func unknownBody(maneuvers []shared.Maneuver) (shared.Body, bool) {
	for _, m := range maneuvers {
		if !m.Body.IsKnown() {
			return m.Body, true
		}
	}
	return 0, false
}
