// Package scenario runs the plant-operations scenario: it builds one filter,
// processes water through it, checks its efficiency, and reports the outcome.
//
// The run moves through the stages Start, Processing, EfficiencyCheck and
// Reporting, and always ends in Shutdown. Failures of the filter are reported
// on the transcript instead of being returned, and a panic during the run is
// folded into the general-error report.
package scenario
