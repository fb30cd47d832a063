//go:build unit

package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Known(t *testing.T) {
	status := KnownStatus(StateOpen)

	assert.True(t, status.Known())
	assert.Equal(t, "open", status.State())
	assert.True(t, status.Open())
	assert.False(t, status.Closed())
	assert.False(t, status.Unrecognized())
}

func TestStatus_Closed(t *testing.T) {
	status := KnownStatus(StateClosed)

	assert.True(t, status.Known())
	assert.True(t, status.Closed())
	assert.False(t, status.Open())
	assert.False(t, status.Unrecognized())
}

func TestStatus_Unrecognized(t *testing.T) {
	status := KnownStatus("reopened")

	assert.True(t, status.Known())
	assert.True(t, status.Unrecognized())
	assert.False(t, status.Open())
	assert.False(t, status.Closed())
	assert.Equal(t, "reopened", status.State())
}

func TestStatus_Failure(t *testing.T) {
	status := FailureStatus("Not Found")

	assert.False(t, status.Known())
	assert.Equal(t, "Not Found", status.Message())
	assert.False(t, status.Open())
	assert.False(t, status.Closed())
	assert.False(t, status.Unrecognized())
}

func TestReference_Fields(t *testing.T) {
	ref := &Reference{
		Owner:      "serde-rs",
		Repository: "serde",
		Number:     423,
		APIURL:     "https://api.github.com/repos/serde-rs/serde/issues/423",
	}

	assert.Equal(t, "serde-rs", ref.Owner)
	assert.Equal(t, "serde", ref.Repository)
	assert.Equal(t, 423, ref.Number)
	assert.Equal(t, "https://api.github.com/repos/serde-rs/serde/issues/423", ref.APIURL)
}
