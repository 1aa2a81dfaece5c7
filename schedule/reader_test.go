package schedule_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegri/HopcroftKarpAlgorithm/builder"
	"github.com/vegri/HopcroftKarpAlgorithm/matching"
	"github.com/vegri/HopcroftKarpAlgorithm/schedule"
)

const examDates = `4
Christian 1
George 1
Paula 3
Sebastian 4
`

func TestReader_SingleInstance(t *testing.T) {
	r := schedule.NewReader(strings.NewReader(examDates))

	p, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, p.N)
	assert.Equal(t, []builder.Record{
		{Name: "Christian", Excluded: []int{1}},
		{Name: "George", Excluded: []int{1}},
		{Name: "Paula", Excluded: []int{3}},
		{Name: "Sebastian", Excluded: []int{4}},
	}, p.Records)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err, "EOF repeats")
}

func TestReader_SeveralInstancesAndBlankLines(t *testing.T) {
	in := "2\n" +
		"ann 1 2\n" +
		"\n" +
		"bo\n" +
		"\n\n" +
		"1\r\n" +
		"  42   1 1 \r\n"
	r := schedule.NewReader(strings.NewReader(in))

	p, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, p.N)
	require.Len(t, p.Records, 2)
	assert.Equal(t, []int{1, 2}, p.Records[0].Excluded)
	assert.Empty(t, p.Records[1].Excluded)

	p, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, p.N)
	require.Len(t, p.Records, 1)
	assert.Equal(t, "42", p.Records[0].Name, "a numeric name is still a name")
	assert.Equal(t, []int{1, 1}, p.Records[0].Excluded)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_EmptyInput(t *testing.T) {
	_, err := schedule.NewReader(strings.NewReader("\n \n")).Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_ZeroCount(t *testing.T) {
	p, err := schedule.NewReader(strings.NewReader("0\n")).Next()
	require.NoError(t, err)
	assert.Equal(t, 0, p.N)

	g, err := p.Graph()
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"count not an integer", "four\n", schedule.ErrMalformedToken, "line 1"},
		{"count with trailing token", "4 4\n", schedule.ErrMalformedToken, "line 1"},
		{"negative count", "-1\n", schedule.ErrMalformedToken, "line 1"},
		{"index not an integer", "2\nann 1\nbo x\n", schedule.ErrMalformedToken, "line 3"},
		{"index glued to letters", "2\nann 1x\n", schedule.ErrMalformedToken, "line 2"},
		{"index above N", "2\nann 3\n", schedule.ErrIndexOutOfRange, "line 2"},
		{"index zero", "2\n\nann 0\n", schedule.ErrIndexOutOfRange, "line 3"},
		{"truncated instance", "3\nann\nbo\n", schedule.ErrUnexpectedEOF, "line 3"},
		{"duplicate name", "2\nann 1\nann 2\n", schedule.ErrDuplicateName, "line 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.NewReader(strings.NewReader(tc.in)).Next()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// tenDates returns an instance with N=10 whose first record is first and
// whose other nine people exclude nothing.
func tenDates(count, first string) string {
	var sb strings.Builder
	sb.WriteString(count + "\n" + first + "\n")
	for _, name := range []string{"B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		sb.WriteString(name + "\n")
	}

	return sb.String()
}

func TestReader_NumericTokens(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantName string
		want     []int
		wantErr  error
	}{
		{"leading zero is decimal", tenDates("10", "A 010"), "A", []int{10}, nil},
		{"leading zero with nine", tenDates("10", "A 09 007"), "A", []int{9, 7}, nil},
		{"count with leading zero", tenDates("010", "A 1"), "A", []int{1}, nil},
		{"plus sign", tenDates("10", "A +4"), "A", []int{4}, nil},
		{"name starting with digits", tenDates("10", "2Pac 1"), "2Pac", []int{1}, nil},
		{"index overflow", tenDates("10", "A 99999999999999999999"), "", nil, schedule.ErrMalformedToken},
		{"count overflow", "99999999999999999999\n", "", nil, schedule.ErrMalformedToken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := schedule.NewReader(strings.NewReader(tc.in)).Next()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, p.N)
			require.Len(t, p.Records, 10)
			assert.Equal(t, tc.wantName, p.Records[0].Name)
			assert.Equal(t, tc.want, p.Records[0].Excluded)
		})
	}
}

// A leading zero must not move an exclusion to another date.
func TestReader_LeadingZeroKeepsExclusion(t *testing.T) {
	p, err := schedule.NewReader(strings.NewReader(tenDates("10", "A 010"))).Next()
	require.NoError(t, err)
	g, err := p.Graph()
	require.NoError(t, err)

	a, _ := g.Lookup(matching.Left, "A")
	ten, _ := g.Lookup(matching.Right, "10")
	eight, _ := g.Lookup(matching.Right, "8")
	assert.False(t, g.HasEdge(a, ten))
	assert.True(t, g.HasEdge(a, eight))
}

func TestReader_LongLine(t *testing.T) {
	const n = 40000
	var sb strings.Builder
	sb.WriteString("1\nann")
	for i := 0; i < n; i++ {
		sb.WriteString(" 1")
	}
	sb.WriteString("\n")
	require.Greater(t, sb.Len(), 64*1024)

	p, err := schedule.NewReader(strings.NewReader(sb.String())).Next()
	require.NoError(t, err)
	require.Len(t, p.Records, 1)
	assert.Len(t, p.Records[0].Excluded, n)
}

func TestReader_OutOfRangeMatchesBuilderSentinel(t *testing.T) {
	_, err := schedule.NewReader(strings.NewReader("1\nann 2\n")).Next()
	assert.ErrorIs(t, err, builder.ErrIndexOutOfRange)
}

func TestReader_ErrorIsSticky(t *testing.T) {
	r := schedule.NewReader(strings.NewReader("1\nann x\n1\nbo\n"))

	_, first := r.Next()
	require.ErrorIs(t, first, schedule.ErrMalformedToken)
	_, again := r.Next()
	assert.Equal(t, first, again)
}

func TestProblem_Graph(t *testing.T) {
	p, err := schedule.NewReader(strings.NewReader(examDates)).Next()
	require.NoError(t, err)

	g, err := p.Graph()
	require.NoError(t, err)
	assert.Equal(t, 8, g.Order())
	assert.Equal(t, 12, g.Size())
	assert.Len(t, g.Left(), 4)
	assert.Len(t, g.Right(), 4)
}
