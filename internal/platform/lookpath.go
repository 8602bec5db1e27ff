package platform

// Candidate is one entry of an ordered "first available tool wins" list.
type Candidate struct {
	Name string
	Args []string
}

// FirstOnPath returns the first candidate whose executable resolves. The
// returned command carries the resolved path.
func FirstOnPath(look LookPathFunc, candidates ...Candidate) (Command, bool) {
	for _, c := range candidates {
		path, err := look(c.Name)
		if err != nil || path == "" {
			continue
		}
		return Command{Name: path, Args: append([]string(nil), c.Args...)}, true
	}
	return Command{}, false
}
