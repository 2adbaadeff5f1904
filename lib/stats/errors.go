package stats

import "github.com/pkg/errors"

// ErrEmptySelection is returned when an aggregate needs at least one business unit. Callers
// should check FilteredResult.IsEmpty first and show a "no matches" state.
var ErrEmptySelection = errors.New("no business unit matches the criteria")
