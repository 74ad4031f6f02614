package pipes

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-pipes/sequence"
)

// Log field keys written by a traced pipe.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldIn        = "in"
	FieldOut       = "out"
)

const component = "pipes"

// WithLogger returns a Pipe over the same sequence that records every
// subsequent stage and terminal operation on l at debug level:
//
//	{"level":"debug","component":"pipes","operation":"filter","in":5,"out":2,"message":"pipe stage"}
//
// The logger is inherited by every pipe derived from the result.
func (p *Pipe[T]) WithLogger(l zerolog.Logger) *Pipe[T] {
	l = l.With().Str(FieldComponent, component).Logger()
	return &Pipe[T]{seq: p.seq, log: &l}
}

// Tap calls fn(p) for side-effects (e.g. logging or debugging) and returns
// p unchanged for further chaining.
func (p *Pipe[T]) Tap(fn func(*Pipe[T])) *Pipe[T] {
	fn(p)
	return p
}

// Dump writes the pipe's JSON rendering to its logger, or to stdout when no
// logger is attached, and returns p for chaining.
func (p *Pipe[T]) Dump() *Pipe[T] {
	if p.log == nil {
		fmt.Println(p.String())
		return p
	}
	p.log.Debug().
		Str(FieldOperation, "dump").
		Int(FieldIn, p.seq.Len()).
		Str("items", p.String()).
		Msg("pipe dump")
	return p
}

// derive wraps out in a new Pipe that inherits p's logger, recording the
// stage when tracing is on.
func derive[T, D any](p *Pipe[T], op string, out sequence.Sequence[D]) *Pipe[D] {
	if p.log != nil {
		p.log.Debug().
			Str(FieldOperation, op).
			Int(FieldIn, p.seq.Len()).
			Int(FieldOut, out.Len()).
			Msg("pipe stage")
	}
	return &Pipe[D]{seq: out, log: p.log}
}

// trace records a terminal operation when tracing is on.
func (p *Pipe[T]) trace(op string) {
	if p.log == nil {
		return
	}
	p.log.Debug().
		Str(FieldOperation, op).
		Int(FieldIn, p.seq.Len()).
		Msg("pipe terminal")
}
