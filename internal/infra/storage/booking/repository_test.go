package booking

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestExecErr_SerializationFailurePassesThrough(t *testing.T) {
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access"}

	err := execErr("UpdateStatus", "execute update", serialization)

	// The driver error must stay recognizable so the transaction manager
	// retries the whole transaction instead of failing the request.
	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	assert.False(t, errors.Is(err, ErrExecQuery))
}

func TestExecErr_OtherErrorsWrapped(t *testing.T) {
	unique := &pq.Error{Code: "23505", Message: "duplicate key value"}

	err := execErr("Create", "execute insert", unique)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "Create - execute insert")

	err = execErr("List", "execute query", errors.New("connection reset"))
	assert.ErrorIs(t, err, ErrExecQuery)
}
