package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/matching-sim/pkg/orderbook"
	"github.com/joripage/matching-sim/pkg/venue/model"
)

func req(instrumentID int, qty int64, price float64) *model.SubmitRequest {
	return &model.SubmitRequest{
		Side:         orderbook.BUY,
		InstrumentID: instrumentID,
		Qty:          qty,
		Price:        price,
	}
}

func TestInstrumentRange(t *testing.T) {
	r := NewInstrumentRange(1024)

	assert.NoError(t, r.Check(req(0, 10, 100)))
	assert.NoError(t, r.Check(req(1023, 10, 100)))

	require.ErrorIs(t, r.Check(req(1024, 10, 100)), ErrInvalidInstrument)
	require.ErrorIs(t, r.Check(req(-1, 10, 100)), ErrInvalidInstrument)
}

func TestPositiveValues(t *testing.T) {
	r := NewPositiveValues()

	assert.NoError(t, r.Check(req(0, 1, 0.01)))

	require.ErrorIs(t, r.Check(req(0, 0, 100)), ErrNonPositiveQty)
	require.ErrorIs(t, r.Check(req(0, -3, 100)), ErrNonPositiveQty)
	require.ErrorIs(t, r.Check(req(0, 10, 0)), ErrNonPositivePrice)
	require.ErrorIs(t, r.Check(req(0, 10, -1)), ErrNonPositivePrice)
}
