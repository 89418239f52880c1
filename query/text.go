package query

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxPrealloc caps slice capacity taken from untrusted counts.
const maxPrealloc = 1 << 16

// tokenReader yields whitespace-separated integers and remembers the line
// each one came from.
type tokenReader struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &tokenReader{sc: sc}
}

// next returns the next integer token; what names it in error messages.
func (t *tokenReader) next(what string) (int, error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return 0, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, t.line+1, err)
			}
			return 0, fmt.Errorf("%w: line %d: unexpected end of input, want %s", ErrMalformedInput, t.line+1, what)
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]

	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrMalformedInput, t.line, what, tok)
	}

	return v, nil
}

// count reads a non-negative integer.
func (t *tokenReader) count(what string) (int, error) {
	v, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: line %d: %s=%d is negative", ErrMalformedInput, t.line, what, v)
	}

	return v, nil
}

// ReadText decodes the text batch format: q, then per query "n m", m edge
// lines "u v", and "s". Here m decides how many edge lines are consumed.
// Tokens after the last query are ignored. No range validation is done.
func ReadText(r io.Reader) ([]Query, error) {
	t := newTokenReader(r)

	q, err := t.count("query count")
	if err != nil {
		return nil, err
	}
	out := make([]Query, 0, min(q, maxPrealloc))
	for i := 0; i < q; i++ {
		qu, err := readOne(t)
		if err != nil {
			return nil, fmt.Errorf("query #%d: %w", i+1, err)
		}
		out = append(out, qu)
	}

	return out, nil
}

func readOne(t *tokenReader) (Query, error) {
	var (
		qu  Query
		err error
	)
	if qu.Vertices, err = t.count("vertex count"); err != nil {
		return qu, err
	}
	if qu.EdgeCount, err = t.count("edge count"); err != nil {
		return qu, err
	}
	qu.Edges = make([][2]int, 0, min(qu.EdgeCount, maxPrealloc))
	for j := 0; j < qu.EdgeCount; j++ {
		var e [2]int
		if e[0], err = t.next("edge endpoint"); err != nil {
			return qu, err
		}
		if e[1], err = t.next("edge endpoint"); err != nil {
			return qu, err
		}
		qu.Edges = append(qu.Edges, e)
	}
	if qu.Source, err = t.next("source"); err != nil {
		return qu, err
	}

	return qu, nil
}

// WriteText writes one line per result: the distances separated by single
// spaces. A result with no distances produces an empty line.
func WriteText(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, r := range results {
		buf = buf[:0]
		for i, d := range r.Distances {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(d), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteQueriesText encodes qs in the format ReadText accepts. The declared
// edge count is written as len(Edges) so the output always reads back.
func WriteQueriesText(w io.Writer, qs []Query) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(qs))
	for _, q := range qs {
		fmt.Fprintln(bw, q.Vertices, len(q.Edges))
		for _, e := range q.Edges {
			fmt.Fprintln(bw, e[0], e[1])
		}
		fmt.Fprintln(bw, q.Source)
	}

	return bw.Flush()
}
