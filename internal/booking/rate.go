package booking

// Purpose is the stated reason for a stay.  Campus recruitment stays are
// billed at a flat institutional rate regardless of occupancy or the
// room's published rates.
type Purpose string

const (
	PurposePersonal          Purpose = "Personal"
	PurposeCampusRecruitment Purpose = "Campus_Recruitment"
)

// RoomType describes either what a room offers (rooms.room_type, where
// "Both" means the guest may pick) or what the guest selected for a stay
// (only "AC" or "NonAC" are meaningful there).
type RoomType string

const (
	RoomTypeAC    RoomType = "AC"
	RoomTypeNonAC RoomType = "NonAC"
	RoomTypeBoth  RoomType = "Both"
)

// Institutional pricing constants, in rupees per night.  The campus
// recruitment rate is a deliberate flat rate fixed by the alumni
// association; do not derive it from room rates.
const (
	CampusRecruitmentRate = 500
	acSurchargeSingle     = 400
	acSurchargeDouble     = 500
)

// Room carries the published pricing a quote needs.  It is a read-only
// view of the catalog record; callers map their storage model onto it.
type Room struct {
	ID              uint64
	SingleOccupancy int
	DoubleOccupancy int
	Type            RoomType
}

// Rate is the resolved per-night pricing for a stay: the base rate plus
// any AC surcharge, both per night.
type Rate struct {
	BaseRate          int
	SurchargePerNight int
}

// ResolveRate maps occupancy, purpose and room-type selection onto the
// room's published rates.  Guests must be 1 or 2; anything else returns
// ErrInvalidGuestCount rather than silently falling through to one of
// the occupancy branches.  Pure function of its inputs.
func ResolveRate(room Room, guests int, purpose Purpose, sel RoomType) (Rate, error) {
	if guests != 1 && guests != 2 {
		return Rate{}, ErrInvalidGuestCount
	}
	if purpose == PurposeCampusRecruitment {
		return Rate{BaseRate: CampusRecruitmentRate}, nil
	}
	r := Rate{BaseRate: room.DoubleOccupancy}
	if guests == 1 {
		r.BaseRate = room.SingleOccupancy
	}
	if sel == RoomTypeAC {
		if guests == 1 {
			r.SurchargePerNight = acSurchargeSingle
		} else {
			r.SurchargePerNight = acSurchargeDouble
		}
	}
	return r, nil
}
