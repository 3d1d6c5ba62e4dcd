package scenario

// Stage is a step of a scenario run.
type Stage int

// Stages in execution order. Shutdown is terminal.
const (
	StageStart Stage = iota
	StageProcessing
	StageEfficiencyCheck
	StageReporting
	StageShutdown
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageProcessing:
		return "processing"
	case StageEfficiencyCheck:
		return "efficiency-check"
	case StageReporting:
		return "reporting"
	case StageShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Outcome classifies how the efficiency check ended.
type Outcome int

const (
	// OutcomeEfficiency means an efficiency value was calculated.
	OutcomeEfficiency Outcome = iota
	// OutcomeDivideByZero means the filter had not processed any water.
	OutcomeDivideByZero
	// OutcomeGeneralError covers every other failure.
	OutcomeGeneralError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEfficiency:
		return "efficiency"
	case OutcomeDivideByZero:
		return "divide-by-zero"
	case OutcomeGeneralError:
		return "general-error"
	default:
		return "unknown"
	}
}
