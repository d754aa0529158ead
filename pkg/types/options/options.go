package options

// Options are forwarded from the caller to every stage of a generation request.
type Options struct {
	// Indent is the nesting level at which the rendered output starts.
	Indent int
}

func Default() *Options {
	return &Options{}
}
