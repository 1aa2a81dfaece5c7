package schedule_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegri/HopcroftKarpAlgorithm/matching"
	"github.com/vegri/HopcroftKarpAlgorithm/schedule"
)

// solve reads the first instance of in and runs HopcroftKarp on it.
func solve(t *testing.T, in string) *matching.Result {
	t.Helper()
	p, err := schedule.NewReader(strings.NewReader(in)).Next()
	require.NoError(t, err)
	g, err := p.Graph()
	require.NoError(t, err)
	res, err := matching.HopcroftKarp(g)
	require.NoError(t, err)

	return res
}

func TestWriteMatching(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, schedule.WriteMatching(&sb, solve(t, examDates)))

	assert.Equal(t, "Christian\t->\t4\n"+
		"George\t->\t3\n"+
		"Paula\t->\t1\n"+
		"Sebastian\t->\t2\n", sb.String())
}

// The endpoint report lists Sebastian with date 4, an excluded date. The
// last path moved Christian from 2 to 4 and gave 2 to Sebastian.
func TestWriteEndpoints(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, schedule.WriteEndpoints(&sb, solve(t, examDates)))

	assert.Equal(t, "Paula\t->\t1\n"+
		"Christian\t->\t2\n"+
		"George\t->\t3\n"+
		"Sebastian\t->\t4\n", sb.String())
}

func TestWriteMatching_Unmatched(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, schedule.WriteMatching(&sb, solve(t, "2\nann 1 2\nbo 2\n")))

	assert.Equal(t, "ann\t->\tunmatched\nbo\t->\t1\n", sb.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriters_PropagateErrors(t *testing.T) {
	res := solve(t, examDates)
	assert.ErrorIs(t, schedule.WriteMatching(failingWriter{}, res), errWrite)
	assert.ErrorIs(t, schedule.WriteEndpoints(failingWriter{}, res), errWrite)
}
