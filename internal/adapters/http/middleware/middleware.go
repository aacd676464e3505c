// Package middleware
package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

type Stack struct {
	middlewares []Middleware
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) Use(mw Middleware) {
	s.middlewares = append(s.middlewares, mw)
}

// Then wraps h with the stack, outermost first.
func (s *Stack) Then(h http.Handler) http.Handler {
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		h = s.middlewares[i](h)
	}
	return h
}

func (s *Stack) Apply(h http.Handler) http.Handler {
	return s.Then(h)
}
