package kernel_test

import (
	"testing"

	"docdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCategory_Validate(t *testing.T) {
	t.Run("valid categories pass validation", func(t *testing.T) {
		for _, category := range []kernel.ServiceCategory{
			kernel.ServiceMunicipalOffice,
			kernel.ServiceSubPrefecture,
			kernel.ServiceJudicial,
		} {
			assert.NoError(t, category.Validate(), "category: %s", category)
		}
	})

	t.Run("unknown and out-of-range values fail validation", func(t *testing.T) {
		assert.Error(t, kernel.ServiceCategoryUnknown.Validate())
		assert.Error(t, kernel.ServiceCategory(42).Validate())
		assert.Error(t, kernel.ServiceCategory(-1).Validate())
	})
}

func TestServiceCategory_String(t *testing.T) {
	testCases := []struct {
		category kernel.ServiceCategory
		expected string
	}{
		{kernel.ServiceMunicipalOffice, "municipal_office"},
		{kernel.ServiceSubPrefecture, "sub_prefecture"},
		{kernel.ServiceJudicial, "judicial"},
		{kernel.ServiceCategoryUnknown, "unknown"},
		{kernel.ServiceCategory(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.category.String())
	}
}

func TestServiceCategoryFromString(t *testing.T) {
	t.Run("parses valid category names", func(t *testing.T) {
		category, err := kernel.ServiceCategoryFromString("sub_prefecture")

		require.NoError(t, err)
		assert.Equal(t, kernel.ServiceSubPrefecture, category)
	})

	t.Run("round-trips every valid category", func(t *testing.T) {
		for _, category := range []kernel.ServiceCategory{
			kernel.ServiceMunicipalOffice,
			kernel.ServiceSubPrefecture,
			kernel.ServiceJudicial,
		} {
			parsed, err := kernel.ServiceCategoryFromString(category.String())
			require.NoError(t, err)
			assert.Equal(t, category, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Municipal_Office", "post_office"} {
			_, err := kernel.ServiceCategoryFromString(name)
			assert.Error(t, err, "expected error for name: %q", name)
		}
	})
}
