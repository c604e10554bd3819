package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorHas(t *testing.T) {
	eval := NewEvaluator(Set{
		"product": {"create", "list"},
		"contact": {"delete"},
	})

	assert.True(t, eval.Has("product:create"))
	assert.True(t, eval.Has("product:list"))
	assert.True(t, eval.Has("contact:delete"))

	assert.False(t, eval.Has("product:delete"))
	assert.False(t, eval.Has("booking:create"), "module absent from set")
	assert.False(t, eval.Has("warehouse:list"), "module outside the closed set")
	assert.False(t, eval.Has("product"), "malformed key")
	assert.False(t, eval.Has(""))
}

func TestEvaluatorLoading(t *testing.T) {
	eval := Pending()
	require.True(t, eval.Loading())
	assert.False(t, eval.Has("product:list"), "nothing is permitted while loading")

	eval.Load(Set{"product": {"list"}})
	require.False(t, eval.Loading())
	assert.True(t, eval.Has("product:list"))
}

func TestPruneDropsEmptyModules(t *testing.T) {
	set := Set{
		"user":    {"create"},
		"booking": {},
	}

	pruned := set.Prune()
	assert.Equal(t, Set{"user": {"create"}}, pruned)
	_, ok := pruned["booking"]
	assert.False(t, ok)

	// original untouched
	_, ok = set["booking"]
	assert.True(t, ok)
}

func TestFlatten(t *testing.T) {
	set := Set{
		"user":    {"create"},
		"booking": {},
	}

	tokens := set.Prune().Flatten()
	assert.Equal(t, []string{"user:create"}, tokens)

	multi := Set{"product": {"update", "create"}, "user": {"list"}}
	assert.Equal(t, []string{"product:create", "product:update", "user:list"}, multi.Flatten())
}

func TestFromList(t *testing.T) {
	set := FromList([]string{"user:create", "product:list", "warehouse:list", "garbage"})
	assert.Equal(t, Set{"user": {"create"}, "product": {"list"}}, set)
}

func TestFullCoversEveryModule(t *testing.T) {
	full := Full()
	require.Len(t, full, len(Modules))
	eval := NewEvaluator(full)
	for _, m := range Modules {
		for _, a := range Actions {
			assert.True(t, eval.Has(Key(m, a)))
		}
	}
}
