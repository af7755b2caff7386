package resolve

// getRemappings derives the external-consumer remapping table from the
// dependency map, per spec.md §4.J: user remappings first verbatim, then
// (if any cross-package edge was discovered) a synthetic npm/:npm/=npm/
// identity row, then one row per dependency-map entry in declaration order.
func (r *Resolver) getRemappings() []Remapping {
	out := make([]Remapping, 0, len(r.userRemappings)+len(r.depMap.order)+1)

	for _, um := range r.userRemappings {
		out = append(out, Remapping{Context: um.Context, Prefix: um.Prefix, Target: um.Target})
	}

	if len(r.depMap.order) > 0 {
		out = append(out, Remapping{Context: "npm/", Prefix: "npm/", Target: "npm/"})
	}

	for _, e := range r.depMap.order {
		context := e.key.origin
		target := ""
		if !e.value.isProject {
			target = e.value.pkg.RootSourceName
		}
		out = append(out, Remapping{
			Context: context,
			Prefix:  e.key.imported + "/",
			Target:  target,
		})
	}

	return out
}
