package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchTarget struct {
	Title string
	Notes *string
	Seats int
}

type patchRequest struct {
	Title    *string
	Notes    *string
	Capacity *int    `patch:"Seats"`
	Password *string `patch:"-"`
}

func ptr[T any](v T) *T { return &v }

func TestMergePatch_SetsOnlyProvidedFields(t *testing.T) {
	dst := patchTarget{Title: "old", Seats: 3}
	fields, err := MergePatch(&dst, patchRequest{Notes: ptr("bring a pen"), Capacity: ptr(12), Password: ptr("x")})
	require.NoError(t, err)

	assert.Equal(t, []string{"Notes", "Seats"}, fields)
	assert.Equal(t, "old", dst.Title)
	assert.Equal(t, "bring a pen", *dst.Notes)
	assert.Equal(t, 12, dst.Seats)
}

func TestMergePatch_RejectsNonPointerDst(t *testing.T) {
	_, err := MergePatch(patchTarget{}, patchRequest{})
	require.Error(t, err)
}

func TestMergePatch_RejectsKindMismatch(t *testing.T) {
	type badRequest struct {
		Title *int
	}
	_, err := MergePatch(&patchTarget{}, badRequest{Title: ptr(1)})
	require.Error(t, err)
}

func TestCountProvided_IncludesSkippedFields(t *testing.T) {
	assert.Equal(t, 0, CountProvided(patchRequest{}))
	assert.Equal(t, 2, CountProvided(&patchRequest{Title: ptr("a"), Password: ptr("b")}))
}
