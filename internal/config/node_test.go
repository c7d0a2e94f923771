package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain() (pkg, mod, ent *Node) {
	pkg = NewRoot("shapes", map[string]any{
		KeyExcluded: false,
		KeyTemplateSubstitutions: []any{
			TemplateSubstitution{Signature: "<A,B>", Replacement: ArgLists{{"1", "1"}}},
		},
		KeySmartPtrType: "std::shared_ptr",
	}, Defaults())

	mod = pkg.Child("geometry", map[string]any{
		KeyTemplateSubstitutions: []any{
			TemplateSubstitution{Signature: "<C>", Replacement: ArgLists{{"9"}}},
		},
		KeySmartPtrType: "boost::shared_ptr",
	})

	ent = mod.Child("Point", map[string]any{
		KeyExcluded: true,
	})

	return pkg, mod, ent
}

func TestNode_GetOverride(t *testing.T) {
	pkg, mod, ent := buildChain()

	v, err := ent.Get(KeyExcluded)
	require.NoError(t, err)
	assert.Equal(t, true, v, "entity value overrides package value")

	v, err = mod.Get(KeyExcluded)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	s, err := ent.String(KeySmartPtrType)
	require.NoError(t, err)
	assert.Equal(t, "boost::shared_ptr", s, "nearest ancestor wins")

	s, err = pkg.String(KeySmartPtrType)
	require.NoError(t, err)
	assert.Equal(t, "std::shared_ptr", s)
}

func TestNode_GetDefaultAndUnset(t *testing.T) {
	_, _, ent := buildChain()

	b, err := ent.Bool(KeyExcludeDefaultArgs)
	require.NoError(t, err)
	assert.False(t, b, "falls back to registered default")

	_, err = ent.Get("no_such_key")
	require.ErrorIs(t, err, ErrKeyUnset)
	assert.Contains(t, err.Error(), "shapes/geometry/Point")

	bare := NewRoot("bare", nil, nil)
	_, err = bare.Get(KeyExcluded)
	assert.ErrorIs(t, err, ErrKeyUnset)
}

func TestNode_Gather(t *testing.T) {
	_, _, ent := buildChain()

	subs, err := ent.Substitutions(RootFirst)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "<A,B>", subs[0].Signature, "package candidates come first")
	assert.Equal(t, "<C>", subs[1].Signature)

	subs, err = ent.Substitutions(LeafFirst)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "<C>", subs[0].Signature)
	assert.Equal(t, "<A,B>", subs[1].Signature)
}

func TestNode_GatherAbsentAndNotList(t *testing.T) {
	_, _, ent := buildChain()

	list, err := ent.Gather(KeyExcludedMethods, RootFirst)
	require.NoError(t, err)
	assert.Empty(t, list, "absent values contribute nothing")

	_, err = ent.Gather(KeySmartPtrType, RootFirst)
	assert.ErrorIs(t, err, ErrNotList)
}

func TestNode_TypedGetters(t *testing.T) {
	root := NewRoot("p", map[string]any{
		KeyExcluded:        "True",
		KeySourceIncludes:  []any{"a.hpp", "b.hpp"},
		KeyPrefixText:      42,
		KeyExcludedMethods: []any{"ok", 3},
	}, Defaults())
	child := root.Child("m", map[string]any{KeySourceIncludes: []any{"c.hpp"}})

	b, err := child.Bool(KeyExcluded)
	require.NoError(t, err)
	assert.True(t, b)

	includes, err := child.StringSlice(KeySourceIncludes)
	require.NoError(t, err)
	assert.Equal(t, []string{"c.hpp"}, includes)

	includes, err = child.GatherStrings(KeySourceIncludes, RootFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.hpp", "b.hpp", "c.hpp"}, includes)

	_, err = child.String(KeyPrefixText)
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = child.GatherStrings(KeyExcludedMethods, RootFirst)
	assert.ErrorIs(t, err, ErrWrongType)

	table, err := child.Replacements()
	require.NoError(t, err)
	assert.Equal(t, DefaultReplacements(), table)
}

func TestOptions_Values(t *testing.T) {
	excluded := true
	prefix := "// generated"
	o := Options{
		Excluded:              &excluded,
		PrefixText:            &prefix,
		TemplateSubstitutions: []TemplateSubstitution{{Signature: "<int A>"}},
		SourceIncludes:        []string{"x.hpp"},
	}

	v := o.Values()
	assert.Equal(t, true, v[KeyExcluded])
	assert.Equal(t, "// generated", v[KeyPrefixText])
	assert.Equal(t, []any{TemplateSubstitution{Signature: "<int A>"}}, v[KeyTemplateSubstitutions])
	assert.Equal(t, []any{"x.hpp"}, v[KeySourceIncludes])
	assert.NotContains(t, v, KeyExcludeDefaultArgs)
	assert.NotContains(t, v, KeyExcludedMethods)
}
