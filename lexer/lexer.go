// Package lexer implements a composable lexical pipeline: an ordered
// chain of token recognizer modules applied to a text cursor, producing a
// lazy stream of tokens or a single terminal diagnostic.
//
// Module order is semantically significant.  A module for a closed keyword
// set must run before one that would greedily consume the same characters
// as a generic identifier, and a string literal module must run before a
// single-character symbol module so quoted content is not picked apart.
package lexer

import (
	"io"

	"github.com/pattyshack/gt/parseutil"
)

// Module is a single token recognizer.  Lex is called with a non-empty
// remaining input slice and must return one of the three outcomes; it must
// never panic on malformed input (that is what Failed is for).
type Module[L any] interface {
	Lex(stream string) Result[L]
}

// ModuleFunc adapts a plain function to a Module.
type ModuleFunc[L any] func(stream string) Result[L]

func (lex ModuleFunc[L]) Lex(stream string) Result[L] {
	return lex(stream)
}

// Builder assembles a Lexer out of an ordered module chain.
type Builder[L any] struct {
	modules []Module[L]
}

func NewBuilder[L any]() *Builder[L] {
	return &Builder[L]{}
}

func (builder *Builder[L]) AddModule(module Module[L]) *Builder[L] {
	builder.modules = append(builder.modules, module)
	return builder
}

// AddModules appends modules without discarding previously added ones.
func (builder *Builder[L]) AddModules(modules ...Module[L]) *Builder[L] {
	builder.modules = append(builder.modules, modules...)
	return builder
}

func (builder *Builder[L]) Build() *Lexer[L] {
	return &Lexer[L]{
		modules: builder.modules,
	}
}

// Lexer is an immutable module chain.  It is read-only after Build and may
// drive any number of token streams.
type Lexer[L any] struct {
	modules []Module[L]
}

// LexString starts a lazy, non-restartable token stream over content.
// fileName is only used for diagnostic locations.
func (lexer *Lexer[L]) LexString(fileName string, content string) *TokenStream[L] {
	start := parseutil.Location{
		FileName: fileName,
		Line:     1,
		Column:   1,
	}
	return &TokenStream[L]{
		lexer:      lexer,
		remaining:  content,
		location:   start,
		tokenStart: start,
	}
}

// TokenStream pulls tokens out of the input one Next call at a time,
// tracking a line/column cursor across every consumed byte.
type TokenStream[L any] struct {
	lexer      *Lexer[L]
	remaining  string
	location   parseutil.Location
	tokenStart parseutil.Location
	done       bool
}

func (stream *TokenStream[L]) CurrentLocation() parseutil.Location {
	return stream.location
}

// TokenLocation returns the start location of the most recently emitted
// token, after any unclaimed bytes in front of it were skipped.  Before
// the first Next call it is the start of the input.
func (stream *TokenStream[L]) TokenLocation() parseutil.Location {
	return stream.tokenStart
}

// Next returns the next token.  It returns io.EOF once the input is
// exhausted, and a positioned error if a module fails; after a failure the
// stream is terminal and further calls return io.EOF.
func (stream *TokenStream[L]) Next() (L, error) {
	var zero L
	if stream.done {
		return zero, io.EOF
	}

	for {
		if len(stream.remaining) == 0 {
			stream.done = true
			return zero, io.EOF
		}

		result := stream.tryModules()
		if result.IsFailed() {
			stream.done = true
			return zero, parseutil.NewLocationError(
				stream.location,
				"%s",
				result.Message())
		}

		if result.IsIgnored() {
			// Nobody claimed this byte.  Silently consume it and retry;
			// this is how insignificant characters such as spaces are
			// skipped without a dedicated whitespace module.
			stream.consume(stream.remaining[:1])
			continue
		}

		token, remainder := result.Token()
		stream.tokenStart = stream.location
		stream.consume(stream.remaining[:len(stream.remaining)-len(remainder)])
		return token, nil
	}
}

// tryModules runs the chain in order.  The first module returning Success
// or Failed decides the outcome; later modules are not consulted.
func (stream *TokenStream[L]) tryModules() Result[L] {
	for _, module := range stream.lexer.modules {
		result := module.Lex(stream.remaining)
		if !result.IsIgnored() {
			return result
		}
	}
	return Ignored[L]()
}

func (stream *TokenStream[L]) consume(prefix string) {
	for idx := 0; idx < len(prefix); idx++ {
		if prefix[idx] == '\n' {
			stream.location.Line++
			stream.location.Column = 1
		} else {
			stream.location.Column++
		}
	}
	stream.remaining = stream.remaining[len(prefix):]
}
