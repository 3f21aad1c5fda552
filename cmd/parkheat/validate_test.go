package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	setupWorkspace(t)

	out, _, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "valid: 3 parks\n", out)
}

func TestValidate_ReportsMissingValues(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, "gaps.csv", testHeader+"Zion,UT,8,,NA,8,8,8,8,8,8,8,8,8,37.30,-113.03\n")

	out, _, err := execute(t, "validate", "gaps.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "valid: 1 parks")
	assert.Contains(t, out, "missing monthly values: 2")
}

func TestValidate_SchemaError(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, "bad.csv", "Park,Jan\nZion,8\n")

	out, stderr, err := execute(t, "validate", "bad.csv")
	requireExitCode(t, err, ExitSchema)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "invalid:")
	assert.Contains(t, stderr, "State")
}

func TestValidate_ValueError(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, "bad.csv", testHeader+"Zion,UT,8,8,8,8,8,8,8,8,8,8,8,8,north,-113.03\n")

	_, stderr, err := execute(t, "validate", "bad.csv")
	requireExitCode(t, err, ExitData)
	assert.Contains(t, stderr, "Latitude")
}

func TestValidate_MissingFile(t *testing.T) {
	setupWorkspace(t)

	_, _, err := execute(t, "validate", "nope.csv")
	requireExitCode(t, err, ExitInvalidArgs)
}
