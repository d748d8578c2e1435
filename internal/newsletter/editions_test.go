package newsletter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты каталога выпусков рассылки.

func TestEdition_KnownKeys(t *testing.T) {
	t.Parallel()

	e, ok := Edition(Morning)
	require.True(t, ok)
	require.Equal(t, "Morning Brief", e.Title)

	e, ok = Edition(Monthly)
	require.True(t, ok)
	require.Equal(t, "1st of every month, 9:00 AM IST", e.DeliveryTime)
}

func TestEdition_UnknownKey(t *testing.T) {
	t.Parallel()

	_, ok := Edition("Hourly")
	require.False(t, ok)
}

func TestAll_OrderAndCopy(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 5)
	require.Equal(t, Morning, all[0].ID)
	require.Equal(t, Monthly, all[4].ID)

	all[0].Title = "mutated"
	require.Equal(t, "Morning Brief", All()[0].Title)
}
