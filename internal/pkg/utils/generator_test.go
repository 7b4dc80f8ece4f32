package utils

import (
	"mediflow-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWalkInID(t *testing.T) {
	id, err := GenerateWalkInID()
	require.NoError(t, err)
	assert.Regexp(t, `^WALKIN-\d{6}-\d{3}$`, id)
}

func TestGenerateObjectName(t *testing.T) {
	name := GenerateObjectName(constvars.StorageFolderXrays, "chest front.PNG")

	assert.True(t, strings.HasPrefix(name, constvars.StorageFolderXrays+"/"))
	assert.True(t, strings.HasSuffix(name, ".PNG"), "the original extension is kept verbatim")
	assert.NotContains(t, name, " ", "the client filename never reaches the object key")

	other := GenerateObjectName(constvars.StorageFolderXrays, "chest front.PNG")
	assert.NotEqual(t, name, other)
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	assert.True(t, strings.HasPrefix(id, constvars.REQUEST_ID_PREFIX))
	assert.Greater(t, len(id), len(constvars.REQUEST_ID_PREFIX))
}
