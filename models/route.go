package models

// RouteEntry is one row of a module's static route table.
//
// Path is either absolute ("/system/user/get") or module-relative
// ("system/user/get"). Placeholders are written as {name} and a trailing
// "**" segment matches one or more remaining segments.
type RouteEntry struct {
	// Method is one of the net/http method constants GET, POST, PUT or DELETE.
	// Rows with any other method are not routed.
	Method string

	// Path is the path template relative to the gateway's API prefix.
	Path string
}
