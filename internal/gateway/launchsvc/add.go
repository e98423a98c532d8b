package launchsvc

import (
	"context"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/gateway"
)

// AddExtension registers a new tracked extension and returns the refreshed
// association list. Registering an already-tracked extension is a no-op,
// not a duplicate row.
func (g *Gateway) AddExtension(ctx context.Context, extension string) ([]assoc.Association, error) {
	normalized := assoc.NormalizeExtension(extension)
	if normalized == "" {
		return nil, &gateway.CommandError{
			Op:      gateway.OpAddExtension,
			Payload: "extension must not be empty",
		}
	}
	if !validExtension(normalized) {
		return nil, &gateway.CommandError{
			Op:      gateway.OpAddExtension,
			Payload: "extension may only contain letters, digits, plus, or minus",
		}
	}

	if _, err := g.store.Register(normalized); err != nil {
		return nil, &gateway.CommandError{Op: gateway.OpAddExtension, Err: err}
	}
	return g.ListAssociations(ctx)
}

func validExtension(extension string) bool {
	for _, ch := range extension {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= '0' && ch <= '9':
		case ch == '+' || ch == '-':
		default:
			return false
		}
	}
	return true
}
