package common_test

import (
	"testing"

	"github.com/pharmindex/repurpose/pkg/types/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_ProducesUniqueNonEmptyIDs(t *testing.T) {
	t.Parallel()

	a := common.NewID()
	b := common.NewID()
	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	assert.NotEqual(t, a, b)
}

func TestInputKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, common.KindDrug.Valid())
	assert.True(t, common.KindDisease.Valid())
	assert.True(t, common.KindUnknown.Valid())
	assert.False(t, common.InputKind("protein").Valid())
	assert.False(t, common.InputKind("").Valid())
}

func TestPagination_Offset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    common.Pagination
		want int
	}{
		{"first page", common.Pagination{Page: 1, PageSize: 100}, 0},
		{"second page", common.Pagination{Page: 2, PageSize: 100}, 100},
		{"zero values", common.Pagination{}, 0},
		{"negative page", common.Pagination{Page: -1, PageSize: 50}, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.p.Offset())
		})
	}
}

func TestOKAndFail_Envelopes(t *testing.T) {
	t.Parallel()

	ok := common.OK("req-1", map[string]string{"k": "v"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
	assert.Equal(t, "req-1", ok.RequestID)
	assert.False(t, ok.Timestamp.IsZero())

	fail := common.Fail[any]("req-2", "SRC_005", "no match", "query=xyz")
	assert.False(t, fail.Success)
	require.NotNil(t, fail.Error)
	assert.Equal(t, "SRC_005", fail.Error.Code)
	assert.Equal(t, "no match", fail.Error.Message)
	assert.Equal(t, "query=xyz", fail.Error.Detail)
}
