package booking

// StayRequest is the caller-built description of a candidate stay.  It
// is assembled incrementally by the presentation layer; ComputeQuote can
// be called against a partially filled request at any time.
type StayRequest struct {
	CheckIn  string  // "2006-01-02"
	CheckOut string  // "2006-01-02"
	Guests   int     // 1 or 2
	RoomType RoomType // guest's AC/NonAC selection
	Purpose  Purpose
}

// Quote is the derived price for a stay.  All amounts are whole rupees.
// Surcharge is the AC surcharge over the whole stay (per-night surcharge
// times nights); Total is BaseRate*Nights + Surcharge.
type Quote struct {
	Nights            int `json:"nights"`
	BaseRate          int `json:"baseRate"`
	SurchargePerNight int `json:"surchargePerNight"`
	Surcharge         int `json:"surcharge"`
	Total             int `json:"total"`
}

// ComputeQuote derives a Quote from a room and a stay request.  It is
// pure and deterministic: it holds no state, and identical inputs always
// produce identical quotes, so the caller may invoke it on every input
// change.  A zero-night stay (equal, reversed or missing dates) prices
// at zero regardless of rates; only an out-of-domain guest count fails.
func ComputeQuote(room Room, stay StayRequest) (Quote, error) {
	rate, err := ResolveRate(room, stay.Guests, stay.Purpose, stay.RoomType)
	if err != nil {
		return Quote{}, err
	}
	n := Nights(stay.CheckIn, stay.CheckOut)
	q := Quote{
		Nights:            n,
		BaseRate:          rate.BaseRate,
		SurchargePerNight: rate.SurchargePerNight,
	}
	if n <= 0 {
		return q, nil
	}
	q.Surcharge = rate.SurchargePerNight * n
	q.Total = rate.BaseRate*n + q.Surcharge
	return q, nil
}
