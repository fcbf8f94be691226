package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Recorder is a tracer that keeps every error traced on its scopes.
type Recorder struct {
	mu     sync.Mutex
	errors map[string][]error
}

type recordingScope struct {
	scopeImpl
	recorder *Recorder
	name     string
}

func (s *recordingScope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.recorder.errors[s.name] = append(s.recorder.errors[s.name], err)
}

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewRecorder() *Recorder {
	return &Recorder{errors: make(map[string][]error)}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	return ctx, &recordingScope{recorder: r, name: spanName}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Errors returns what was traced on spans named spanName.
func (r *Recorder) Errors(spanName string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors[spanName]...)
}
