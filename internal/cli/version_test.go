package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dosecalc/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dosecalc "+version.String()+"\n", stdout)
}

func TestVersionCmd_JSON(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := executeRoot(t, "version", "-o", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, version.GetVersion(), info["version"])
	assert.Equal(t, version.GetGitCommit(), info["git_commit"])
	assert.Equal(t, version.GetBuildDate(), info["build_date"])
}
