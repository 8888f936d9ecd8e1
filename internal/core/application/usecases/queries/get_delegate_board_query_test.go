package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdispatch/internal/core/application/usecases/queries"
	"docdispatch/internal/core/domain/model/kernel"
)

func TestNewGetDelegateBoardQuery(t *testing.T) {
	t.Run("creates query with delegate id", func(t *testing.T) {
		delegateID := kernel.NewUUID()

		query, err := queries.NewGetDelegateBoardQuery(delegateID)
		require.NoError(t, err)

		assert.Equal(t, delegateID, query.DelegateID())
		assert.NoError(t, query.Validate())
	})

	t.Run("rejects unconstructed delegate id", func(t *testing.T) {
		_, err := queries.NewGetDelegateBoardQuery(kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("zero value query does not validate", func(t *testing.T) {
		var query queries.GetDelegateBoardQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetDelegateBoardQueryIsNotConstructed)
	})
}

func TestNewGetUncompletedOrdersQuery(t *testing.T) {
	query := queries.NewGetUncompletedOrdersQuery()
	assert.NoError(t, query.Validate())

	var zero queries.GetUncompletedOrdersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}
