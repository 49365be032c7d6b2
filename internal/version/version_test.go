package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfo_String(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.0",
	}

	s := info.String()
	assert.Contains(t, s, "submitkit v1.2.3")
	assert.Contains(t, s, "abc1234")
}
