package rule

import (
	"fmt"

	"github.com/joripage/matching-sim/pkg/venue/model"
)

// InstrumentRange rejects instrument ids outside [0, max).
type InstrumentRange struct {
	max int
}

func NewInstrumentRange(max int) *InstrumentRange {
	return &InstrumentRange{max: max}
}

func (r *InstrumentRange) Check(req *model.SubmitRequest) error {
	if req.InstrumentID < 0 || req.InstrumentID >= r.max {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidInstrument, req.InstrumentID, r.max)
	}
	return nil
}
