package route

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-admin-gateway/models"
)

// HandlerFor picks the handler of a table row by its method.
type HandlerFor func(method string) http.Handler

// Compile turns a static route table into a [Fragment]. Rows are processed in
// table order:
//   - rows whose method is not in [SupportedMethods] are skipped and
//     reported by [Fragment.Skipped];
//   - a malformed template aborts compilation with an error naming the row;
//   - a row whose method and normalized pattern repeat an earlier row
//     replaces it.
func Compile(entries []models.RouteEntry, handlerFor HandlerFor) (*Fragment, error) {
	f := NewFragment()

	for i, e := range entries {
		method := strings.ToUpper(e.Method)
		if !slices.Contains(SupportedMethods, method) {
			f.skipped = append(f.skipped, e)
			continue
		}

		if err := f.Handle(method, e.Path, handlerFor(method)); err != nil {
			return nil, fmt.Errorf("route table row %d (%s %s): %w", i, e.Method, e.Path, err)
		}
	}

	return f, nil
}

// MustCompile is like [Compile] but panics on error. It is meant for the
// static tables wired at start-up.
func MustCompile(entries []models.RouteEntry, handlerFor HandlerFor) *Fragment {
	f, err := Compile(entries, handlerFor)
	if err != nil {
		panic(err)
	}
	return f
}

// MockFor is the [HandlerFor] of routes without a real implementation: every
// method gets [Mock].
func MockFor(string) http.Handler {
	return Mock
}
