// Package trylog writes structured zap entries for try.Try outcomes.
//
// Log records one entry per outcome and returns the outcome so it can sit in
// the middle of a chain. Failures builds a try.Consumer[error] for
// OnAnyFailure and OnFailureIn.
package trylog
