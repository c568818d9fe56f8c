package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watset/embedding"
)

func TestParseLaplacian(t *testing.T) {
	cases := map[string]embedding.Laplacian{
		"":                 embedding.Symmetric,
		"symmetric":        embedding.Symmetric,
		" Symmetric\t":     embedding.Symmetric,
		"UNNORMALIZED":     embedding.Unnormalized,
		"  unnormalized  ": embedding.Unnormalized,
	}
	for in, want := range cases {
		got, err := parseLaplacian(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}

	_, err := parseLaplacian("random-walk")
	assert.ErrorIs(t, err, ErrBadParameter)
}
