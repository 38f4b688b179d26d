package cesr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDater_Scenario7(t *testing.T) {
	dts := "2020-08-22T17:50:09.988921+00:00"

	d, err := NewDaterFromString(dts)
	require.NoError(t, err)
	require.Equal(t, dts, d.Dts())
	require.Equal(t, "1AAF", d.Code())
}

func TestDater_Qb64RoundTrip(t *testing.T) {
	dts := "2020-08-22T17:50:09.988921+00:00"

	d, err := NewDaterFromString(dts)
	require.NoError(t, err)

	d2, err := DaterFromQb64(d.Qb64())
	require.NoError(t, err)
	require.Equal(t, dts, d2.Dts())
}

func TestDater_NegativeOffsetRoundTrip(t *testing.T) {
	dts := "2020-08-22T17:50:09.988921-05:00"

	d, err := NewDaterFromString(dts)
	require.NoError(t, err)

	d2, err := DaterFromQb64(d.Qb64())
	require.NoError(t, err)
	require.Equal(t, dts, d2.Dts())
}

func TestDater_InvalidFormat(t *testing.T) {
	_, err := NewDaterFromString("not-a-date")
	require.Error(t, err)
}

func TestDater_DatetimeParses(t *testing.T) {
	dts := "2020-08-22T17:50:09.988921+00:00"

	d, err := NewDaterFromString(dts)
	require.NoError(t, err)

	tm, err := d.Datetime()
	require.NoError(t, err)
	require.Equal(t, 2020, tm.Year())
}
