package bridge

// Member describes one function of the namespace.
type Member struct {
	// Path is the dotted location under the namespace, e.g. "fs.readDir".
	Path string `json:"path" jsonschema:"example=fs.readDir"`
	// Global is the injected global the member references.
	Global string `json:"global"`
	// Params are the Lua parameters. A trailing "?" marks optional ones.
	Params []string `json:"params"`
	// Resolves is the type the returned promise resolves to.
	Resolves string `json:"resolves"`
}

var signatures = map[Capability]struct {
	params   []string
	resolves string
}{
	CapInvoke:   {[]string{"name", "...args"}, "any"},
	CapReadFile: {[]string{"path"}, "string"},
	CapReadDir:  {[]string{"path"}, "string[]"},
	CapExists:   {[]string{"path"}, "boolean"},
	CapNotify:   {[]string{"message", "icon?"}, "nil"},
}

// Members describes the functions published for v, in declaration order.
func Members(v Variant) []Member {
	caps := v.Capabilities()
	members := make([]Member, 0, len(caps))
	for _, c := range caps {
		sig := signatures[c]
		members = append(members, Member{
			Path:     c.String(),
			Global:   InjectedName(c),
			Params:   sig.params,
			Resolves: sig.resolves,
		})
	}
	return members
}
