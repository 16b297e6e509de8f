package scaffold

import "path"

// Summary maps the files written to each tree to a short description.
// Keys are slash separated paths relative to the tree.
func (r *Result) Summary() (engine, extension map[string]string) {
	engine = make(map[string]string, len(r.EngineFiles))
	for _, f := range r.EngineFiles {
		engine[f.TargetPath] = f.Description
	}

	extension = make(map[string]string, len(r.ExtensionFiles))
	for _, f := range r.ExtensionFiles {
		extension[f.TargetPath] = f.Description
	}
	for _, s := range r.Steps {
		for _, f := range s.Files {
			extension[path.Clean(f)] = s.Step.Feature.Label()
		}
	}
	return engine, extension
}

// FileCount returns the number of files written in both trees.
func (r *Result) FileCount() int {
	n := len(r.EngineFiles) + len(r.ExtensionFiles)
	for _, s := range r.Steps {
		n += len(s.Files)
	}
	return n
}
