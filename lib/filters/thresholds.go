package filters

import (
	"github.com/pkg/errors"

	"github.com/pescuma/stratdash/lib/model"
)

var ErrOutOfRangeThreshold = errors.New("minimum potential out of range")

// ValidateMinPotential must be called where the threshold enters the system. Apply assumes
// the value was already checked.
func ValidateMinPotential(minPotential int) error {
	if minPotential < model.MinPotential || minPotential > model.MaxPotential {
		return errors.Wrapf(ErrOutOfRangeThreshold, "%v should be between %v and %v",
			minPotential, model.MinPotential, model.MaxPotential)
	}

	return nil
}
