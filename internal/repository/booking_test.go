package repository

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case **string:
			*p, _ = r.values[i].(*string)
		case *domain.BookingStatus:
			*p = domain.BookingStatus(r.values[i].(string))
		case *[]byte:
			*p, _ = r.values[i].([]byte)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return fmt.Errorf("unexpected destination %T", d)
		}
	}
	return nil
}

func TestEventLockKey(t *testing.T) {
	a := eventLockKey("e1")

	assert.Equal(t, a, eventLockKey("e1"))
	assert.NotEqual(t, a, eventLockKey("e2"))
	assert.GreaterOrEqual(t, a, int64(0))
}

func TestEncodeInfo(t *testing.T) {
	v, err := encodeInfo(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = encodeInfo(map[string]string{"emergencyName": "Jo"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"emergencyName":"Jo"}`, v.(string))
}

func TestPgCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: uniqueViolation})

	assert.True(t, isUniqueViolation(err))
	assert.False(t, isForeignKeyViolation(err))
	assert.False(t, isUniqueViolation(assert.AnError))
}

func TestScanBooking(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("decodes additional information", func(t *testing.T) {
		row := fakeRow{values: []any{
			"b1", "e1", "u1", (*string)(nil), "RESERVED",
			[]byte(`{"reservationCloseDate":"2026-03-16T10:00:00.000Z"}`), now, now,
		}}

		b, err := scanBooking(row)

		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusReserved, b.Status)
		closeDate, ok := b.ReservationCloseDate()
		require.True(t, ok)
		assert.Equal(t, now.Add(14*24*time.Hour), closeDate.UTC())
	})

	t.Run("null additional information", func(t *testing.T) {
		row := fakeRow{values: []any{"b1", "e1", "u1", (*string)(nil), "CONFIRMED", []byte(nil), now, now}}

		b, err := scanBooking(row)

		require.NoError(t, err)
		assert.Nil(t, b.AdditionalInfo)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := scanBooking(fakeRow{err: sql.ErrNoRows})

		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestEventTx_RejectsOtherEvents(t *testing.T) {
	tx := &eventTx{eventID: "e1"}

	assert.NoError(t, tx.check("e1"))
	assert.Error(t, tx.check("e2"))
}
