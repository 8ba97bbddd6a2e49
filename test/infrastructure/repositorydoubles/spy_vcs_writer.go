//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// CheckoutCall records a single invocation of Checkout.
type CheckoutCall struct {
	Root entities.RepositoryRoot
	Ref  string
	Path string
}

// SpyVCSWriter implements repositories.VCSWriter as a configurable spy.
type SpyVCSWriter struct {
	CheckoutErr   error
	CheckoutCalls []CheckoutCall
	// OnCheckout runs before returning, e.g. to rewrite the working tree.
	OnCheckout func(call CheckoutCall)
	// CheckoutCtxErrs holds ctx.Err() of every call, observed after OnCheckout.
	CheckoutCtxErrs []error
}

var _ repositories.VCSWriter = (*SpyVCSWriter)(nil)

func (s *SpyVCSWriter) Checkout(
	ctx context.Context, root entities.RepositoryRoot, ref, relativePath string,
) error {
	call := CheckoutCall{Root: root, Ref: ref, Path: relativePath}
	s.CheckoutCalls = append(s.CheckoutCalls, call)
	if s.CheckoutErr != nil {
		return s.CheckoutErr
	}
	if s.OnCheckout != nil {
		s.OnCheckout(call)
	}
	s.CheckoutCtxErrs = append(s.CheckoutCtxErrs, ctx.Err())
	return ctx.Err()
}
