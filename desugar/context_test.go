package desugar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNamespacedContextPrefixesGeneratedNames(t *testing.T) {
	c := NewNamespacedContext(nil, nil, nil)
	name := c.freshProtoName("__lift")
	require.True(t, strings.HasPrefix(name, c.Namespace+"_"))
}

func TestNewNamespacedContextsDoNotCollide(t *testing.T) {
	a := NewNamespacedContext(nil, nil, nil)
	b := NewNamespacedContext(nil, nil, nil)
	require.NotEqual(t, a.Namespace, b.Namespace)
	require.NotEqual(t, a.freshProtoName("__lift"), b.freshProtoName("__lift"))
}
