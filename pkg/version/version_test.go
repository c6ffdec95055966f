package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/here/pkg/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.Revision)
	assert.Regexp(t, `\d+\.\d+\.\d+`, version.Version)
	assert.Equal(t, version.Version+"+"+version.Revision, version.String())
}
