package model

// FileResult holds the outcome of refactoring a single source file.
type FileResult struct {
	Path    Path
	Changed bool
	Cached  bool
	Applied []string // rule ids that changed the file, in first-applied order
	Diff    string
	Output  []byte
	Err     error // parse or write problem; the file was left untouched
}

// Summary aggregates the results of a run.
type Summary struct {
	Files   int
	Changed int
	Cached  int
	Failed  int
	Rules   map[string]int // rule id -> number of files it changed
}

// Add folds one file result into the summary.
func (s *Summary) Add(r FileResult) {
	s.Files++

	if r.Cached {
		s.Cached++
	}

	if r.Err != nil {
		s.Failed++

		return
	}

	if !r.Changed {
		return
	}

	s.Changed++

	if s.Rules == nil {
		s.Rules = map[string]int{}
	}

	for _, id := range r.Applied {
		s.Rules[id]++
	}
}
