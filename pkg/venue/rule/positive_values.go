package rule

import (
	"fmt"

	"github.com/joripage/matching-sim/pkg/venue/model"
)

// PositiveValues rejects submissions with qty <= 0 or price <= 0. The book
// itself never validates these, so a venue running without this rule passes
// whatever the caller sends straight through.
type PositiveValues struct{}

func NewPositiveValues() *PositiveValues {
	return &PositiveValues{}
}

func (r *PositiveValues) Check(req *model.SubmitRequest) error {
	if req.Qty <= 0 {
		return fmt.Errorf("%w: %d", ErrNonPositiveQty, req.Qty)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositivePrice, req.Price)
	}
	return nil
}
