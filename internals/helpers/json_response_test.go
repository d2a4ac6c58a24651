package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.EqualValues(t, 45, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPagination_EmptyResult(t *testing.T) {
	p := BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPagination_NormalizesInvalidInput(t *testing.T) {
	p := BuildPagination(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(400))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(401))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "SERVICE_UNAVAILABLE", statusToErrorCode(503))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
