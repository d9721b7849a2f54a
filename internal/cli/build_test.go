package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	bi := BuildInfo{
		Version: "0.7.1",
		Date:    "2018-04-01",
		Dev:     false,
	}

	assert.Equal(t, "0.7.1", bi.FullVersion())
}

func TestDevBuildVersion(t *testing.T) {
	bi := BuildInfo{
		Version: "0.7.1",
		Date:    "2018-04-01",
		Dev:     true,
	}

	assert.Equal(t, "0.7.1-dev", bi.FullVersion())
}

func TestBuildStampTrimsTime(t *testing.T) {
	bi := BuildInfo{
		Version:   "1.2.3",
		CommitSHA: "abc123",
		Date:      "2022-03-08T16:20:00Z",
	}

	assert.Equal(t, "v1.2.3, built 2022-03-08 (abc123)", buildStamp(bi))
}

func TestDefaultBuildInfo(t *testing.T) {
	SetBuildInfo(BuildInfo{})
	info := buildInfo()
	assert.True(t, info.Dev)
	assert.Equal(t, devVersion, info.Version)
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(BuildInfo{Version: "1.0.0", Date: "2022-01-02"})
	defer SetBuildInfo(BuildInfo{})

	f := newFixture(t)
	err := f.run("version")
	require.NoError(t, err)
	f.assertOut("v1.0.0, built 2022-01-02\n")
}
