package schedule

// UnknownMajorGroup is the major-group label used before any section heading
// has been seen.
const UnknownMajorGroup = "Unknown"

// Context is the carried-forward document state: the current major group and
// package assignment. Values persist until overwritten by a later row,
// including across page boundaries; nothing is ever rolled back. The context
// is threaded through an ordered fold over pages and rows, so correctness
// depends on strictly sequential document-order processing.
type Context struct {
	MajorGroup  string
	PackageCode string
	PackageName string
}

// NewContext returns the state used at the start of a document.
func NewContext() Context {
	return Context{MajorGroup: UnknownMajorGroup}
}

// ApplyHeading records a new major group.
func (c *Context) ApplyHeading(label string) {
	if label != "" {
		c.MajorGroup = label
	}
}

// ApplyPackage records a package summary row's code and name.
func (c *Context) ApplyPackage(code, name string) {
	c.PackageCode = code
	c.PackageName = name
}
