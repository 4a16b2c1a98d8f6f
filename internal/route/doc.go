// Package route compiles declarative route tables into chi routes.
//
// A module describes its endpoints as an ordered list of [models.RouteEntry]
// rows. [Compile] normalizes every template into chi syntax ({name}
// placeholders, a trailing "*" for "**"), binds the handler chosen for the
// row's method and returns a [Fragment]: an ordered, de-duplicated set of
// [CompiledRoute] values that can be registered into any chi.Router.
//
// When two bindings share a method and normalized pattern, the later one
// replaces the earlier one.
//
// The package also holds the handlers every module shares: the mock handler
// for routes without a real implementation, the gateway 404 handler and the
// [JSON] adapter that turns a plain function into an enveloped endpoint.
package route
