package domain

// CheckStatus is the lifecycle state of one check execution.
//
//	None -> InProgress -> {Canceled, CompletedPassed, CompletedFailed, Error}
//	None -> Error (required evidence category was never collected)
type CheckStatus string

// Check status values.
const (
	CheckStatusNone            CheckStatus = "none"
	CheckStatusInProgress      CheckStatus = "inProgress"
	CheckStatusCanceled        CheckStatus = "canceled"
	CheckStatusCompletedPassed CheckStatus = "completedPassed"
	CheckStatusCompletedFailed CheckStatus = "completedFailed"
	// CheckStatusError means no data source of a required category exists.
	CheckStatusError CheckStatus = "error"
)

// IsTerminal reports whether no further transition is possible.
func (s CheckStatus) IsTerminal() bool {
	switch s {
	case CheckStatusCanceled, CheckStatusCompletedPassed, CheckStatusCompletedFailed, CheckStatusError:
		return true
	default:
		return false
	}
}

// IsPassed reports whether the check completed with a match.
func (s CheckStatus) IsPassed() bool {
	return s == CheckStatusCompletedPassed
}

// CanTransition reports whether a check may move from one status to another.
func (s CheckStatus) CanTransition(to CheckStatus) bool {
	switch s {
	case CheckStatusNone:
		return to == CheckStatusInProgress || to == CheckStatusError
	case CheckStatusInProgress:
		return to.IsTerminal()
	default:
		return false
	}
}

// DetectorStatus is the lifecycle state of one detector evaluated against one input.
//
//	None -> InProgress -> {Completed, Canceled}
type DetectorStatus string

// Detector status values.
const (
	DetectorStatusNone       DetectorStatus = "none"
	DetectorStatusInProgress DetectorStatus = "inProgress"
	DetectorStatusCompleted  DetectorStatus = "completed"
	DetectorStatusCanceled   DetectorStatus = "canceled"
)

// IsTerminal reports whether no further transition is possible.
func (s DetectorStatus) IsTerminal() bool {
	return s == DetectorStatusCompleted || s == DetectorStatusCanceled
}

// CanTransition reports whether a detector may move from one status to another.
func (s DetectorStatus) CanTransition(to DetectorStatus) bool {
	switch s {
	case DetectorStatusNone:
		return to == DetectorStatusInProgress
	case DetectorStatusInProgress:
		return to.IsTerminal()
	default:
		return false
	}
}
