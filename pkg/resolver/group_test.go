package resolver

import (
	"math/rand/v2"
	"testing"

	"github.com/cuemby/burrow/pkg/types"
	"github.com/cuemby/burrow/pkg/weighted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func srvRecord(priority, weight int, target string) types.Record {
	return types.NewRecord(types.TypeSRV, []types.Field{
		{Name: "priority", Value: priority},
		{Name: "weight", Value: weight},
		{Name: "port", Value: 5060},
		{Name: "target", Value: target},
	})
}

func TestGroupByPriority(t *testing.T) {
	records := []types.Record{
		srvRecord(10, 50, "a.example.com."),
		srvRecord(20, 30, "b.example.com."),
		srvRecord(20, 70, "c.example.com."),
	}
	g, err := Group(records, "priority")
	require.NoError(t, err)

	assert.Equal(t, []any{10, 20}, g.Keys())
	assert.Equal(t, 2, g.Len())
	assert.Len(t, g.Get(10), 1)
	assert.Len(t, g.Get(20), 2)

	// input order preserved within a bucket
	tier := g.Get(20)
	target, _ := tier[0].Get("target")
	assert.Equal(t, "b.example.com.", target)
}

func TestGroupStringAndIntKeysCollapse(t *testing.T) {
	records := []types.Record{
		types.NewRecord(types.TypeMX, []types.Field{
			{Name: "preference", Value: "10"},
			{Name: "name", Value: "mx1.example.com."},
		}),
		mxRecord(10, "mx2.example.com."),
	}
	g, err := Group(records, "preference")
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	assert.Len(t, g.Get(10), 2)
	assert.Len(t, g.Get("10"), 2)
}

func TestGroupMissingFieldFails(t *testing.T) {
	_, err := Group([]types.Record{mxRecord(10, "mx1.example.com.")}, "priority")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBadInput)
}

func TestGroupEmptyInput(t *testing.T) {
	g, err := Group(nil, "priority")
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Keys())
	assert.Nil(t, g.Get(10))
}

func TestOrderedByPriorityTiersStaySorted(t *testing.T) {
	records := []types.Record{
		srvRecord(20, 10, "late-a.example.com."),
		srvRecord(10, 10, "early-a.example.com."),
		srvRecord(20, 10, "late-b.example.com."),
		srvRecord(10, 10, "early-b.example.com."),
	}
	s := weighted.NewWithSource(rand.NewPCG(7, 7))

	ordered, err := OrderedByPriority(s, records, "priority", "weight")
	require.NoError(t, err)
	require.Len(t, ordered, 4)

	for i, r := range ordered {
		prio, _ := r.Get("priority")
		if i < 2 {
			assert.Equal(t, 10, prio, "position %d", i)
		} else {
			assert.Equal(t, 20, prio, "position %d", i)
		}
	}
}

func TestOrderedSRVWeightBiasWithinTier(t *testing.T) {
	records := []types.Record{
		srvRecord(10, 1, "light.example.com."),
		srvRecord(10, 200, "heavy.example.com."),
	}
	d := NewWithProber(nil, nil)
	d.shuffler = weighted.NewWithSource(rand.NewPCG(3, 9))

	heavyFirst := 0
	for i := 0; i < 500; i++ {
		ordered, err := d.OrderedSRV(records)
		require.NoError(t, err)
		target, _ := ordered[0].Get("target")
		if target == "heavy.example.com." {
			heavyFirst++
		}
	}
	// heavy should lead roughly 200/201 of the time
	assert.Greater(t, heavyFirst, 450)
}

func TestOrderedMXIsPermutationPerTier(t *testing.T) {
	records := []types.Record{
		mxRecord(20, "backup.example.com."),
		mxRecord(10, "mx1.example.com."),
		mxRecord(10, "mx2.example.com."),
	}
	d := NewWithProber(nil, nil)

	ordered, err := d.OrderedMX(records)
	require.NoError(t, err)
	require.Len(t, ordered, 3)

	first := map[any]bool{}
	for _, r := range ordered[:2] {
		pref, _ := r.Get("preference")
		assert.Equal(t, 10, pref)
		name, _ := r.Get("name")
		first[name] = true
	}
	assert.Len(t, first, 2)

	pref, _ := ordered[2].Get("preference")
	assert.Equal(t, 20, pref)
}
