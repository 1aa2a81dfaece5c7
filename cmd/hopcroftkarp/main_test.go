package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegri/HopcroftKarpAlgorithm/internal/config"
	"github.com/vegri/HopcroftKarpAlgorithm/schedule"
)

const twoInstances = `4
Christian 1
George 1
Paula 3
Sebastian 4
2
ann 1 2
bo 2
`

func TestRun_Matching(t *testing.T) {
	var out strings.Builder
	err := run(&config.Config{Report: config.ReportMatching}, strings.NewReader(twoInstances), &out)
	require.NoError(t, err)

	assert.Equal(t, "Christian\t->\t4\n"+
		"George\t->\t3\n"+
		"Paula\t->\t1\n"+
		"Sebastian\t->\t2\n"+
		"ann\t->\tunmatched\n"+
		"bo\t->\t1\n", out.String())
}

func TestRun_Endpoints(t *testing.T) {
	var out strings.Builder
	err := run(&config.Config{Report: config.ReportEndpoints, Verbose: true}, strings.NewReader(twoInstances), &out)
	require.NoError(t, err)

	assert.Equal(t, "Paula\t->\t1\n"+
		"Christian\t->\t2\n"+
		"George\t->\t3\n"+
		"Sebastian\t->\t4\n"+
		"bo\t->\t1\n", out.String())
}

func TestRun_StopsAtMalformedInstance(t *testing.T) {
	var out strings.Builder
	in := "1\nann\n1\nbo x\n1\ncy\n"
	err := run(&config.Config{Report: config.ReportMatching}, strings.NewReader(in), &out)

	assert.ErrorIs(t, err, schedule.ErrMalformedToken)
	assert.Equal(t, "ann\t->\t1\n", out.String())
}
