package cli

import "github.com/mklettner/dropzone/pkg/hover"

// recorder implements hover.Actions by capturing the single call the
// engine dispatches, so commands can report a decision without mutating
// any document.
type recorder struct {
	op    string
	level int // -1 when the op carries no level
	fired bool
}

func (r *recorder) record(op string, level int) {
	r.op = op
	r.level = level
	r.fired = true
}

func (r *recorder) Clear()                             { r.record("clear", -1) }
func (r *recorder) Above(_, _ hover.Node, level int)   { r.record("above", level) }
func (r *recorder) Below(_, _ hover.Node, level int)   { r.record("below", level) }
func (r *recorder) LeftOf(_, _ hover.Node, level int)  { r.record("leftOf", level) }
func (r *recorder) RightOf(_, _ hover.Node, level int) { r.record("rightOf", level) }
func (r *recorder) InlineLeft(_, _ hover.Node)         { r.record("inlineLeft", -1) }
func (r *recorder) InlineRight(_, _ hover.Node)        { r.record("inlineRight", -1) }
