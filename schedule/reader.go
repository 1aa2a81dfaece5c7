package schedule

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/vegri/HopcroftKarpAlgorithm/builder"
	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

// maxLineLen bounds a single input line; longer lines fail with
// bufio.ErrTooLong.
const maxLineLen = 16 << 20

// Int only matches whole tokens: "2Pac" lexes as one Word. A name made of
// digits lexes as Int, and the record grammar accepts either token for it.
var sLineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?[0-9]+\b`},
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

// Numbers are captured as text and converted with atoi: participle's own
// integer conversion honours base prefixes and reads "010" as octal.
type countLine struct {
	N string `parser:"@Int"`
}

type recordLine struct {
	Name     string   `parser:"@(Int | Word)"`
	Excluded []string `parser:"@Int*"`
}

var (
	sParseCount  = participle.MustBuild[countLine](participle.Lexer(sLineLexer))
	sParseRecord = participle.MustBuild[recordLine](participle.Lexer(sLineLexer))
)

// Problem is one instance: N dates and who cannot attend which.
type Problem struct {
	N       int
	Records []builder.Record
}

// Graph builds the availability graph of p.
func (p *Problem) Graph() (*matching.Graph, error) {
	if p.N == 0 {
		return matching.NewGraph(), nil
	}

	return builder.BuildGraph(nil, builder.Exclusions(p.N, p.Records))
}

// Reader yields problems from a line-oriented stream. The first error other
// than io.EOF is sticky: the position inside the stream is unknown after it.
type Reader struct {
	sc   *bufio.Scanner
	line int
	err  error
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	return &Reader{sc: sc}
}

// Next reads the next instance. It returns io.EOF when the stream ends
// before a count line.
func (r *Reader) Next() (*Problem, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, err := r.next()
	if err != nil && err != io.EOF {
		r.err = err
	}

	return p, err
}

func (r *Reader) next() (*Problem, error) {
	// 1) Count line.
	text, ok, err := r.scan()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	cl, err := sParseCount.ParseString("", text)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedToken, "line %d: count %q: %v", r.line, text, err)
	}
	n, err := r.atoi(cl.N)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrMalformedToken, "line %d: negative count %d", r.line, n)
	}

	// 2) N records.
	p := &Problem{N: n, Records: make([]builder.Record, 0, n)}
	seen := make(map[string]int, n)
	for len(p.Records) < p.N {
		text, ok, err = r.scan()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(ErrUnexpectedEOF, "line %d: got %d of %d records", r.line, len(p.Records), p.N)
		}
		rec, err := r.record(text, p.N)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[rec.Name]; dup {
			return nil, errors.Wrapf(ErrDuplicateName, "line %d: %q already listed on line %d", r.line, rec.Name, first)
		}
		seen[rec.Name] = r.line
		p.Records = append(p.Records, rec)
	}

	return p, nil
}

// record parses one record line and checks its indices against 1..n.
func (r *Reader) record(text string, n int) (builder.Record, error) {
	rl, err := sParseRecord.ParseString("", text)
	if err != nil {
		return builder.Record{}, errors.Wrapf(ErrMalformedToken, "line %d: record %q: %v", r.line, text, err)
	}
	rec := builder.Record{Name: rl.Name, Excluded: make([]int, 0, len(rl.Excluded))}
	for _, tok := range rl.Excluded {
		idx, err := r.atoi(tok)
		if err != nil {
			return builder.Record{}, err
		}
		if idx < 1 || idx > n {
			return builder.Record{}, errors.Wrapf(ErrIndexOutOfRange, "line %d: %q excludes %d, want 1..%d", r.line, rl.Name, idx, n)
		}
		rec.Excluded = append(rec.Excluded, idx)
	}

	return rec, nil
}

// atoi converts a lexed Int token as a decimal number.
func (r *Reader) atoi(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedToken, "line %d: %q: %v", r.line, tok, err)
	}

	return v, nil
}

// scan returns the next non-blank line.
func (r *Reader) scan() (string, bool, error) {
	for r.sc.Scan() {
		r.line++
		if text := strings.TrimSpace(r.sc.Text()); text != "" {
			return text, true, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return "", false, errors.Wrapf(err, "line %d", r.line)
	}

	return "", false, nil
}
