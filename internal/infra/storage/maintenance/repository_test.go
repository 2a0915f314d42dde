package maintenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelharmony/hotel-ops-service/internal/domain"
)

func TestCancelRequestBuilder_AppendsReasonToNotes(t *testing.T) {
	reason := "guest checked out early"

	query, args, err := cancelRequestBuilder(5, &reason).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE maintenance_requests SET status = $1, notes = COALESCE(notes || E'\\n', '') || $2 WHERE id = $3",
		query)
	assert.Equal(t, []interface{}{domain.MaintenanceCancelled, reason, int64(5)}, args)
}

func TestCancelRequestBuilder_NilReasonKeepsNotes(t *testing.T) {
	query, args, err := cancelRequestBuilder(5, nil).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE maintenance_requests SET status = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{domain.MaintenanceCancelled, int64(5)}, args)
}
