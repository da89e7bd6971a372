package queries_test

import (
	"testing"

	"efood/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingApprovalOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingApprovalOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingApprovalOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingApprovalOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingApprovalOrdersQueryIsNotConstructed)
}
