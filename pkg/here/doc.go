// Package here resolves paths relative to a named project root.
//
// The root is found by scanning the current working directory for a path
// segment matching the project directory name. The shallowest match wins, so
// a working directory of /x/project/y/project with the name "project"
// resolves to /x/project. Once resolved, the root never changes for the
// lifetime of a [Here].
//
//	h, err := here.New("my_project")
//	if err != nil {
//		return err
//	}
//	data := h.Here("data", "input.csv") // "/home/me/my_project/data/input.csv"
package here
