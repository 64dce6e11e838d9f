package conversation

// Prefix formats a fragment prepended to every line of conversation output.
type Prefix interface {
	Prefix(ctx *Context) string
}

// NullPrefix is the identity prefix. It prepends nothing.
type NullPrefix struct{}

func (NullPrefix) Prefix(ctx *Context) string { return "" }

// PluginNamePrefix prepends the owning plugin's name to every line, in the
// form "[name] ".
type PluginNamePrefix struct {
	PluginName string
}

func (p PluginNamePrefix) Prefix(ctx *Context) string {
	return "[" + p.PluginName + "] "
}
