package grid

import (
	"strconv"
	"strings"

	"github.com/batchatco/go-thrower"
)

// Bound is one endpoint of an index expression. A literal bound holds a
// 1-based index; negative literals count back from the end of the dimension,
// so -1 is the last element. An end-relative bound resolves to the
// dimension's extent minus its offset.
type Bound struct {
	fromEnd bool
	value   int64
}

// Lit is the literal index i.
func Lit(i int64) Bound {
	return Bound{value: i}
}

// End is the last index of the dimension.
func End() Bound {
	return Bound{fromEnd: true}
}

// EndMinus is the index k back from the end of the dimension.
func EndMinus(k int64) Bound {
	return Bound{fromEnd: true, value: k}
}

// resolve maps the bound to an absolute 1-based index. The extent is always
// the variable's own declared extent for that dimension.
func (b Bound) resolve(extent int64) int64 {
	if b.fromEnd {
		return extent - b.value
	}
	if b.value < 0 {
		return extent + 1 + b.value
	}
	return b.value
}

type exprKind int

const (
	exprAll exprKind = iota
	exprScalar
	exprRange
)

// IndexExpr selects elements along a single dimension of a variable.
type IndexExpr struct {
	kind   exprKind
	start  Bound
	stop   Bound
	stride int64
}

// All selects the full dimension (the ":" expression).
func All() IndexExpr {
	return IndexExpr{kind: exprAll}
}

// At selects the single index i; negative i counts back from the end.
func At(i int64) IndexExpr {
	return IndexExpr{kind: exprScalar, start: Lit(i)}
}

// AtEnd selects the single index k back from the end ("end-k").
func AtEnd(k int64) IndexExpr {
	return IndexExpr{kind: exprScalar, start: EndMinus(k)}
}

// Span selects start..stop with stride 1.
func Span(start, stop Bound) IndexExpr {
	return IndexExpr{kind: exprRange, start: start, stop: stop, stride: 1}
}

// SpanStride selects start..stop stepping by stride.
func SpanStride(start Bound, stride int64, stop Bound) IndexExpr {
	return IndexExpr{kind: exprRange, start: start, stop: stop, stride: stride}
}

func (e IndexExpr) resolve(extent int64) (first, last, stride int64) {
	switch e.kind {
	case exprAll:
		return 1, extent, 1
	case exprScalar:
		v := e.start.resolve(extent)
		return v, v, 1
	default:
		return e.start.resolve(extent), e.stop.resolve(extent), e.stride
	}
}

// Translate converts per-dimension index expressions into a Section over a
// variable with the given shape. A single All expression selects the whole
// array whatever the rank; otherwise omitted trailing dimensions default to
// All. Supplying more expressions than the rank is ErrRankMismatch, and any
// resolved bound outside the shape is ErrIndexOutOfRange.
func Translate(name string, shape []int64, exprs ...IndexExpr) (sec Section, err error) {
	defer thrower.RecoverError(&err)
	return translate(name, shape, exprs), nil
}

func translate(name string, shape []int64, exprs []IndexExpr) Section {
	rank := len(shape)
	// A lone ":" means the whole array, not just the first dimension.
	if len(exprs) == 1 && exprs[0].kind == exprAll {
		return fullSection(shape)
	}
	if len(exprs) > rank {
		failf(ErrRankMismatch, "variable %q: %d index expressions for rank %d",
			name, len(exprs), rank)
	}
	sec := Section{
		First:  make([]int64, rank),
		Last:   make([]int64, rank),
		Stride: make([]int64, rank),
	}
	for i := 0; i < rank; i++ {
		e := All()
		if i < len(exprs) {
			e = exprs[i]
		}
		first, last, stride := e.resolve(shape[i])
		if stride < 1 {
			failf(ErrIndexOutOfRange,
				"variable %q dimension %d: stride %d is less than 1",
				name, i, stride)
		}
		if first < 1 || first > last || last > shape[i] {
			failf(ErrIndexOutOfRange,
				"variable %q dimension %d: resolved range %d..%d outside 1..%d",
				name, i, first, last, shape[i])
		}
		sec.First[i] = first
		sec.Last[i] = last
		sec.Stride[i] = stride
	}
	return sec
}

// ParseExpr parses the string form of an index expression:
//
//	":"         the full dimension
//	"7"         a single index
//	"-1"        the last index
//	"end-2"     two back from the end
//	"2:10"      a range
//	"2:3:end"   a range with a stride
func ParseExpr(s string) (e IndexExpr, err error) {
	defer thrower.RecoverError(&err)
	return parseExpr(s), nil
}

// ParseExprs parses one expression per dimension.
func ParseExprs(exprs ...string) (parsed []IndexExpr, err error) {
	defer thrower.RecoverError(&err)
	parsed = make([]IndexExpr, len(exprs))
	for i, s := range exprs {
		parsed[i] = parseExpr(s)
	}
	return parsed, nil
}

func parseExpr(s string) IndexExpr {
	trimmed := strings.TrimSpace(s)
	if trimmed == ":" {
		return All()
	}
	parts := strings.Split(trimmed, ":")
	switch len(parts) {
	case 1:
		return IndexExpr{kind: exprScalar, start: parseBound(s, parts[0])}
	case 2:
		return Span(parseBound(s, parts[0]), parseBound(s, parts[1]))
	case 3:
		return SpanStride(parseBound(s, parts[0]), parseInt(s, parts[1]),
			parseBound(s, parts[2]))
	default:
		failf(ErrBadExpression, "%q has too many colons", s)
	}
	panic("never gets here")
}

func parseBound(expr, s string) Bound {
	s = strings.TrimSpace(s)
	if s == "end" {
		return End()
	}
	if rest, found := strings.CutPrefix(s, "end-"); found {
		k := parseInt(expr, rest)
		if k < 0 {
			failf(ErrBadExpression, "%q: negative end offset", expr)
		}
		return EndMinus(k)
	}
	return Lit(parseInt(expr, s))
}

func parseInt(expr, s string) int64 {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		failf(ErrBadExpression, "%q: %q is not an index", expr, strings.TrimSpace(s))
	}
	return i
}
