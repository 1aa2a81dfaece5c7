// Package schedule reads exam-date availability instances and writes their
// matchings.
//
// Input is a stream of instances. Each instance is a count line N followed
// by N record lines of the form
//
//	name idx idx ...
//
// where every idx in 1..N names a date the person cannot attend. Blank lines
// are ignored. Numbers are decimal ("010" is ten) and a line may be up to
// 16 MiB long. Reader.Next returns one *Problem per instance and io.EOF once
// the stream ends cleanly between instances.
//
// Problem.Graph turns an instance into a matching.Graph with one left vertex
// per person and right vertices "1".."N", adjacent wherever a date is not
// excluded.
//
// Two reports are available:
//
//	WriteMatching   name\t->\tdate for every person, or name\t->\tunmatched
//	WriteEndpoints  last\t->\tfirst for every augmenting path, in discovery order
//
// WriteEndpoints reproduces the historical output. It omits pairs formed in
// the interior of longer paths, so WriteMatching is the report to use.
//
// Errors:
//   - ErrMalformedToken  - a count or index that is not an integer, or a line
//     that does not fit the record grammar
//   - ErrIndexOutOfRange - an index outside 1..N
//   - ErrDuplicateName   - a name repeated within one instance
//   - ErrUnexpectedEOF   - the stream ends inside an instance
//
// Every error carries the offending line number and matches its sentinel
// with errors.Is.
package schedule
