package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Context is the number of unchanged lines shown around changes by
// [Unified].
var Context = 3

// Unified renders the diff from from to to in unified format, with hunk
// headers and no file header. It returns "" if there are no differences.
// With colorize, insertions are green, deletions red and hunk headers cyan.
func Unified(from, to string, colorize bool) string {
	ls := Lines(from, to)
	if !Changed(ls) {
		return ""
	}
	paint := func(_ Op, s string) string { return s }
	if colorize {
		ins := color.New(color.FgGreen)
		del := color.New(color.FgRed)
		hdr := color.New(color.FgCyan)
		ins.EnableColor()
		del.EnableColor()
		hdr.EnableColor()
		paint = func(op Op, s string) string {
			switch op {
			case Insert:
				return ins.Sprint(s)
			case Delete:
				return del.Sprint(s)
			case Replace:
				return hdr.Sprint(s)
			default:
				return s
			}
		}
	}
	buf := &strings.Builder{}
	for _, h := range hunks(ls) {
		hdr := fmt.Sprintf("@@ -%s +%s @@", span(h.fromLine, h.fromLen), span(h.toLine, h.toLen))
		buf.WriteString(paint(Replace, hdr))
		buf.WriteByte('\n')
		for _, ln := range ls[h.start:h.end] {
			buf.WriteString(paint(ln.Op, ln.Op.String()+ln.Text))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

type hunk struct {
	start, end       int
	fromLine, toLine int
	fromLen, toLen   int
}

func span(line, n int) string {
	if n == 0 {
		return fmt.Sprintf("%d,0", line)
	}
	if n == 1 {
		return fmt.Sprintf("%d", line)
	}
	return fmt.Sprintf("%d,%d", line, n)
}

// hunks groups the changes of ls with up to Context lines around them.
// Line numbers are 1-based.
func hunks(ls []Line) []hunk {
	// from/to line numbers before each index
	fromAt := make([]int, len(ls)+1)
	toAt := make([]int, len(ls)+1)
	for i, ln := range ls {
		fromAt[i+1], toAt[i+1] = fromAt[i], toAt[i]
		if ln.Op != Insert {
			fromAt[i+1]++
		}
		if ln.Op != Delete {
			toAt[i+1]++
		}
	}
	var res []hunk
	cur := (*hunk)(nil)
	for i, ln := range ls {
		if ln.Op == Equal {
			continue
		}
		start := max(0, i-Context)
		end := min(len(ls), i+1+Context)
		if cur != nil && start <= cur.end {
			cur.end = end
			continue
		}
		if cur != nil {
			res = append(res, *cur)
		}
		cur = &hunk{start: start, end: end}
	}
	if cur != nil {
		res = append(res, *cur)
	}
	for i := range res {
		h := &res[i]
		h.fromLen = fromAt[h.end] - fromAt[h.start]
		h.toLen = toAt[h.end] - toAt[h.start]
		h.fromLine = fromAt[h.start] + 1
		h.toLine = toAt[h.start] + 1
		if h.fromLen == 0 {
			h.fromLine--
		}
		if h.toLen == 0 {
			h.toLine--
		}
	}
	return res
}
