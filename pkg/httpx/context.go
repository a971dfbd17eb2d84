package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject holds the authenticated caller's token subject.
	CtxKeySubject ctxKey = "subject"
)

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, CtxKeySubject, subject)
}

// SubjectFromContext returns the subject set by WithSubject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeySubject).(string)
	return v, ok && v != ""
}
