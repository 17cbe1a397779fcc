package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL_Normalizes(t *testing.T) {
	t.Parallel()

	// Same address regardless of case and surrounding whitespace.
	assert.Equal(t, URL("alice@example.com"), URL("  Alice@Example.COM "))
}

func TestURL_KnownHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=200&r=pg&d=mm",
		URL("alice@example.com"))
}
