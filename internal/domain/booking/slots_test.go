package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalogOrder(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, []string{
		"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM",
	}, catalog.Labels())
}

func TestCatalogContains(t *testing.T) {
	catalog := DefaultCatalog()

	assert.True(t, catalog.Contains("09:00 AM"))
	assert.True(t, catalog.Contains("05:00 PM"))
	assert.False(t, catalog.Contains("10:00 AM"))
	assert.False(t, catalog.Contains("09:00 am")) // igualdad exacta
	assert.False(t, catalog.Contains(""))
}

func TestCatalogWithout(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("nothing taken returns full catalog", func(t *testing.T) {
		free := catalog.Without(map[string]struct{}{})
		assert.Equal(t, catalog.Labels(), free)
	})

	t.Run("taken labels are removed in catalog order", func(t *testing.T) {
		free := catalog.Without(map[string]struct{}{
			"11:00 AM": {},
			"05:00 PM": {},
		})
		assert.Equal(t, []string{"09:00 AM", "01:00 PM", "03:00 PM"}, free)
	})

	t.Run("unknown labels are ignored", func(t *testing.T) {
		free := catalog.Without(map[string]struct{}{
			"10:30 AM": {},
		})
		assert.Equal(t, catalog.Labels(), free)
	})

	t.Run("everything taken returns empty", func(t *testing.T) {
		taken := map[string]struct{}{}
		for _, s := range catalog {
			taken[s] = struct{}{}
		}
		assert.Empty(t, catalog.Without(taken))
	})
}

func TestNewCatalogCopiesInput(t *testing.T) {
	labels := []string{"08:00 AM", "10:00 AM"}
	catalog := NewCatalog(labels)

	labels[0] = "mutated"
	assert.Equal(t, []string{"08:00 AM", "10:00 AM"}, catalog.Labels())
}
