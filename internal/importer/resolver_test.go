package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIndexResolve(t *testing.T) {
	ix := NewEntityIndex("customer")
	ix.Add("ACME Inc.", "c1")
	ix.Add("acme@example.com", "c1")

	id, ok := ix.Resolve("  acme   inc. ")
	require.True(t, ok)
	assert.Equal(t, "c1", id)

	id, ok = ix.Resolve("ACME@EXAMPLE.COM")
	require.True(t, ok)
	assert.Equal(t, "c1", id)

	_, ok = ix.Resolve("unknown")
	assert.False(t, ok)
}

func TestEntityIndexFirstWriterWins(t *testing.T) {
	ix := NewEntityIndex("customer")
	ix.Add("Acme", "c1")
	ix.Add("acme", "c2")

	id, ok := ix.Resolve("Acme")
	require.True(t, ok)
	assert.Equal(t, "c1", id)
}

func TestEntityIndexIgnoresEmptyLabels(t *testing.T) {
	ix := NewEntityIndex("project")
	ix.Add("  ", "p1")
	assert.Equal(t, 0, ix.Len())
}

func TestScopedEntityIndex(t *testing.T) {
	ix := NewScopedEntityIndex("sub_branch")
	ix.Add("parent1", "Depo A", "b1")
	ix.Add("parent2", "Depo A", "b2")

	id, ok := ix.Resolve("parent1", "depo a")
	require.True(t, ok)
	assert.Equal(t, "b1", id)

	id, ok = ix.Resolve("parent2", "DEPO A")
	require.True(t, ok)
	assert.Equal(t, "b2", id)

	_, ok = ix.Resolve("parent3", "Depo A")
	assert.False(t, ok)
}

func TestResolutionErrorsEchoLabel(t *testing.T) {
	nf := &NotFoundError{Kind: "customer", Label: "Ghost Ltd"}
	assert.Equal(t, "customer not found: Ghost Ltd", nf.Error())

	pnf := &ParentNotFoundError{Kind: "customer", Label: "Ghost Ltd"}
	assert.Equal(t, "parent customer not found: Ghost Ltd", pnf.Error())
}
