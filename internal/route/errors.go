package route

import "errors"

var (
	// ErrMalformedTemplate is returned for a path template that cannot be
	// normalized: an unbalanced brace, an empty or invalid placeholder name,
	// a repeated placeholder or a wildcard before the last segment.
	ErrMalformedTemplate = errors.New("malformed path template")

	// ErrUnsupportedMethod is returned by [Fragment.Handle] for methods other
	// than GET, POST, PUT and DELETE.
	ErrUnsupportedMethod = errors.New("unsupported http method")

	// ErrMissingParameter is returned by handlers when a required request
	// parameter is absent. It is answered with 400.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrNotFound is returned by handlers for an unknown resource. It is
	// answered with 404.
	ErrNotFound = errors.New("resource not found")
)
