package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// teesta mirrors the sample room used across the original screens:
// singles at 1200/night, doubles at 1800/night, AC available.
var teesta = Room{ID: 1, SingleOccupancy: 1200, DoubleOccupancy: 1800, Type: RoomTypeBoth}

func TestResolveRateOccupancy(t *testing.T) {
	r, err := ResolveRate(teesta, 1, PurposePersonal, RoomTypeNonAC)
	require.NoError(t, err)
	assert.Equal(t, Rate{BaseRate: 1200}, r)

	r, err = ResolveRate(teesta, 2, PurposePersonal, RoomTypeNonAC)
	require.NoError(t, err)
	assert.Equal(t, Rate{BaseRate: 1800}, r)
}

func TestResolveRateACSurcharge(t *testing.T) {
	r, err := ResolveRate(teesta, 1, PurposePersonal, RoomTypeAC)
	require.NoError(t, err)
	assert.Equal(t, Rate{BaseRate: 1200, SurchargePerNight: 400}, r)

	r, err = ResolveRate(teesta, 2, PurposePersonal, RoomTypeAC)
	require.NoError(t, err)
	assert.Equal(t, Rate{BaseRate: 1800, SurchargePerNight: 500}, r)
}

// Campus recruitment pricing is a flat institutional rate: it overrides
// the occupancy rates and carries no AC surcharge, whatever the guest
// selected.
func TestResolveRateCampusRecruitmentOverridesEverything(t *testing.T) {
	for _, guests := range []int{1, 2} {
		for _, sel := range []RoomType{RoomTypeAC, RoomTypeNonAC, ""} {
			r, err := ResolveRate(teesta, guests, PurposeCampusRecruitment, sel)
			require.NoError(t, err)
			assert.Equal(t, Rate{BaseRate: 500}, r, "guests=%d sel=%q", guests, sel)
		}
	}
}

func TestResolveRateRejectsBadGuestCounts(t *testing.T) {
	for _, guests := range []int{0, -1, 3, 7} {
		_, err := ResolveRate(teesta, guests, PurposePersonal, RoomTypeNonAC)
		assert.ErrorIs(t, err, ErrInvalidGuestCount, "guests=%d", guests)

		// The constraint applies before the purpose override; no silent
		// coercion for recruitment stays either.
		_, err = ResolveRate(teesta, guests, PurposeCampusRecruitment, RoomTypeAC)
		assert.ErrorIs(t, err, ErrInvalidGuestCount, "guests=%d", guests)
	}
}
