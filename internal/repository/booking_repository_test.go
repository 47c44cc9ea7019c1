package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
)

// The fake driver below scripts row results per query substring and
// records every statement, so the SQL-level invariants (cancellation
// cutoff, overlap bounds, ref stamping inside the transaction) can be
// asserted without a running MySQL.  Values flow through the same
// database/sql conversions the real driver uses; in particular DATE
// columns are delivered as time.Time, exactly as parseTime=true does.

type script struct {
	match string
	cols  []string
	rows  [][]driver.Value
}

type call struct {
	query string
	args  []driver.Value
}

type fakeDB struct {
	mu      sync.Mutex
	scripts []script
	calls   []call
	lastID  int64
}

func (f *fakeDB) record(query string, args []driver.NamedValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vals := make([]driver.Value, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	f.calls = append(f.calls, call{query: query, args: vals})
}

func (f *fakeDB) find(query string) *script {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.scripts {
		if strings.Contains(query, f.scripts[i].match) {
			return &f.scripts[i]
		}
	}
	return nil
}

// callIndex returns the position of the first recorded statement
// containing substr, or -1.
func (f *fakeDB) callIndex(substr string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.calls {
		if strings.Contains(c.query, substr) {
			return i
		}
	}
	return -1
}

func (f *fakeDB) callCount(substr string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.Contains(c.query, substr) {
			n++
		}
	}
	return n
}

type fakeConnector struct{ db *fakeDB }

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) { return &fakeConn{db: c.db}, nil }
func (c fakeConnector) Driver() driver.Driver                        { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return nil, errors.New("use the connector") }

type fakeConn struct{ db *fakeDB }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not prepared") }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return fakeTx{db: c.db}, nil }

func (c *fakeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return fakeTx{db: c.db}, nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.record(query, args)
	if s := c.db.find(query); s != nil {
		return &scriptedRows{cols: s.cols, rows: s.rows}, nil
	}
	return &scriptedRows{}, nil
}

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.db.record(query, args)
	return stubResult{lastID: c.db.lastID}, nil
}

type fakeTx struct{ db *fakeDB }

func (t fakeTx) Commit() error {
	t.db.record("COMMIT", nil)
	return nil
}

func (t fakeTx) Rollback() error {
	t.db.record("ROLLBACK", nil)
	return nil
}

type scriptedRows struct {
	cols []string
	rows [][]driver.Value
	pos  int
}

func (r *scriptedRows) Columns() []string { return r.cols }
func (r *scriptedRows) Close() error      { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

type stubResult struct{ lastID int64 }

func (r stubResult) LastInsertId() (int64, error) { return r.lastID, nil }
func (r stubResult) RowsAffected() (int64, error) { return 1, nil }

func newFakeDB(t *testing.T, lastID int64, scripts ...script) (*sql.DB, *fakeDB) {
	t.Helper()
	f := &fakeDB{scripts: scripts, lastID: lastID}
	db := sql.OpenDB(fakeConnector{db: f})
	t.Cleanup(func() { _ = db.Close() })
	return db, f
}

func cancelLookup(checkIn time.Time, userID uint64, status string) script {
	return script{
		match: "SELECT user_id, check_in, status FROM bookings",
		cols:  []string{"user_id", "check_in", "status"},
		rows:  [][]driver.Value{{int64(userID), checkIn, status}},
	}
}

func TestCancelForUserRejectsStartedStay(t *testing.T) {
	began := time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
	db, f := newFakeDB(t, 0, cancelLookup(began, 5, model.BookingStatusConfirmed))
	repo := NewBookingRepo(db)

	err := repo.CancelForUser(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Zero(t, f.callCount("UPDATE bookings SET status"), "a started stay must never be cancelled")
}

func TestCancelForUserCancelsUpcomingStay(t *testing.T) {
	upcoming := time.Now().UTC().AddDate(0, 0, 30)
	db, f := newFakeDB(t, 0, cancelLookup(upcoming, 5, model.BookingStatusConfirmed))
	repo := NewBookingRepo(db)

	require.NoError(t, repo.CancelForUser(context.Background(), 1, 5))
	assert.Equal(t, 1, f.callCount("UPDATE bookings SET status"))
}

func TestCancelForUserOwnership(t *testing.T) {
	upcoming := time.Now().UTC().AddDate(0, 0, 30)

	t.Run("foreign booking is forbidden", func(t *testing.T) {
		db, f := newFakeDB(t, 0, cancelLookup(upcoming, 7, model.BookingStatusConfirmed))
		err := NewBookingRepo(db).CancelForUser(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Zero(t, f.callCount("UPDATE bookings SET status"))
	})

	t.Run("owner id zero bypasses the check", func(t *testing.T) {
		db, f := newFakeDB(t, 0, cancelLookup(upcoming, 7, model.BookingStatusConfirmed))
		require.NoError(t, NewBookingRepo(db).CancelForUser(context.Background(), 1, 0))
		assert.Equal(t, 1, f.callCount("UPDATE bookings SET status"))
	})
}

func TestCancelForUserRejectsNonConfirmed(t *testing.T) {
	upcoming := time.Now().UTC().AddDate(0, 0, 30)
	db, _ := newFakeDB(t, 0, cancelLookup(upcoming, 5, model.BookingStatusCancelled))

	err := NewBookingRepo(db).CancelForUser(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCancelForUserMissingBooking(t *testing.T) {
	db, _ := newFakeDB(t, 0, script{
		match: "SELECT user_id, check_in, status FROM bookings",
		cols:  []string{"user_id", "check_in", "status"},
	})

	err := NewBookingRepo(db).CancelForUser(context.Background(), 99, 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestHasOverlapBindsExclusiveBounds(t *testing.T) {
	db, f := newFakeDB(t, 0, script{
		match: "SELECT COUNT(*) FROM bookings",
		cols:  []string{"n"},
		rows:  [][]driver.Value{{int64(0)}},
	})
	repo := NewBookingRepo(db)

	overlap, err := repo.HasOverlap(context.Background(), 3, "2025-06-20", "2025-06-23")
	require.NoError(t, err)
	assert.False(t, overlap)

	require.NotEmpty(t, f.calls)
	q := f.calls[0]
	// The new check-in is compared against existing check-outs and vice
	// versa, both strictly, so back-to-back stays sharing a turnover
	// date do not collide.
	assert.Contains(t, q.query, "check_in < ? AND check_out > ?")
	assert.Equal(t, []driver.Value{int64(3), model.BookingStatusConfirmed, "2025-06-23", "2025-06-20"}, q.args)
}

func TestHasOverlapReportsCollision(t *testing.T) {
	db, _ := newFakeDB(t, 0, script{
		match: "SELECT COUNT(*) FROM bookings",
		cols:  []string{"n"},
		rows:  [][]driver.Value{{int64(2)}},
	})

	overlap, err := NewBookingRepo(db).HasOverlap(context.Background(), 3, "2025-06-20", "2025-06-23")
	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestCreateStampsRefAndFormatsDates(t *testing.T) {
	now := time.Now().UTC()
	db, f := newFakeDB(t, 41, script{
		match: "FROM bookings WHERE id = ?",
		cols:  strings.Split(strings.ReplaceAll(bookingColumns, " ", ""), ","),
		rows: [][]driver.Value{{
			int64(41), "BK-000041", int64(3), int64(5),
			time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
			int64(1), "NonAC", "Personal", int64(1200), int64(0), int64(3600),
			model.BookingStatusConfirmed, now, now,
		}},
	})
	repo := NewBookingRepo(db)

	b := &model.Booking{
		RoomID:      3,
		UserID:      5,
		CheckIn:     "2025-06-20",
		CheckOut:    "2025-06-23",
		Guests:      1,
		RoomType:    "NonAC",
		Purpose:     "Personal",
		BaseRate:    1200,
		TotalAmount: 3600,
	}
	require.NoError(t, repo.Create(context.Background(), b))

	assert.Equal(t, uint64(41), b.ID)
	assert.Equal(t, "BK-000041", b.BookingRef)
	// DATE columns come back as time.Time and must be re-serialized as
	// calendar dates, not RFC3339 timestamps.
	assert.Equal(t, "2025-06-20", b.CheckIn)
	assert.Equal(t, "2025-06-23", b.CheckOut)

	insert := f.callIndex("INSERT INTO bookings")
	stamp := f.callIndex("UPDATE bookings SET booking_ref")
	commit := f.callIndex("COMMIT")
	require.GreaterOrEqual(t, insert, 0)
	require.Greater(t, stamp, insert, "the ref is stamped after the insert")
	require.Greater(t, commit, stamp, "both statements run inside the transaction")
}
