package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuoteScenarios(t *testing.T) {
	// The three-night window used by the original sample data.
	stay := StayRequest{CheckIn: "2025-06-20", CheckOut: "2025-06-23"}

	t.Run("single guest non-AC", func(t *testing.T) {
		s := stay
		s.Guests = 1
		s.Purpose = PurposePersonal
		s.RoomType = RoomTypeNonAC
		q, err := ComputeQuote(teesta, s)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Nights)
		assert.Equal(t, 3600, q.Total)
		assert.Zero(t, q.Surcharge)
	})

	t.Run("single guest AC", func(t *testing.T) {
		s := stay
		s.Guests = 1
		s.Purpose = PurposePersonal
		s.RoomType = RoomTypeAC
		q, err := ComputeQuote(teesta, s)
		require.NoError(t, err)
		// 3x1200 base plus 3x400 surcharge
		assert.Equal(t, 1200, q.Surcharge)
		assert.Equal(t, 4800, q.Total)
	})

	t.Run("campus recruitment flat rate", func(t *testing.T) {
		s := stay
		s.Guests = 2
		s.Purpose = PurposeCampusRecruitment
		s.RoomType = RoomTypeAC
		q, err := ComputeQuote(teesta, s)
		require.NoError(t, err)
		assert.Equal(t, 500, q.BaseRate)
		assert.Equal(t, 1500, q.Total)
		assert.Zero(t, q.Surcharge)
	})

	t.Run("zero-length stay costs nothing", func(t *testing.T) {
		s := StayRequest{
			CheckIn:  "2025-06-20",
			CheckOut: "2025-06-20",
			Guests:   2,
			Purpose:  PurposePersonal,
			RoomType: RoomTypeAC,
		}
		q, err := ComputeQuote(teesta, s)
		require.NoError(t, err)
		assert.Zero(t, q.Nights)
		assert.Zero(t, q.Total)
	})
}

func TestComputeQuoteIsDeterministic(t *testing.T) {
	s := StayRequest{
		CheckIn:  "2025-06-20",
		CheckOut: "2025-06-27",
		Guests:   2,
		Purpose:  PurposePersonal,
		RoomType: RoomTypeAC,
	}
	first, err := ComputeQuote(teesta, s)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeQuote(teesta, s)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeQuoteTotalNeverNegative(t *testing.T) {
	stays := []StayRequest{
		{CheckIn: "2025-06-23", CheckOut: "2025-06-20", Guests: 1, Purpose: PurposePersonal},
		{Guests: 2, Purpose: PurposeCampusRecruitment},
		{CheckIn: "2025-06-20", CheckOut: "2025-06-21", Guests: 1, Purpose: PurposePersonal, RoomType: RoomTypeAC},
	}
	for _, s := range stays {
		q, err := ComputeQuote(teesta, s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q.Total, 0)
	}
}

func TestComputeQuotePropagatesGuestCountError(t *testing.T) {
	s := StayRequest{CheckIn: "2025-06-20", CheckOut: "2025-06-23", Guests: 3, Purpose: PurposePersonal}
	_, err := ComputeQuote(teesta, s)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}
