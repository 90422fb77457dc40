package domain

// Selection is the set of chosen seat labels, kept in the order they were picked.
type Selection struct {
	labels []string
}

func (s *Selection) Contains(label string) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Toggle adds label when absent and removes it when present.
// It reports whether label is selected afterwards. Labels stay in pick
// order, so a label removed and picked again moves to the end.
func (s *Selection) Toggle(label string) bool {
	for i, l := range s.labels {
		if l == label {
			s.labels = append(s.labels[:i:i], s.labels[i+1:]...)
			return false
		}
	}
	s.labels = append(s.labels, label)
	return true
}

// Labels returns a copy of the selected labels.
func (s *Selection) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s *Selection) Len() int {
	return len(s.labels)
}

func (s *Selection) Clear() {
	s.labels = nil
}

// retain drops every label keep rejects.
func (s *Selection) retain(keep func(string) bool) {
	kept := s.labels[:0:0]
	for _, l := range s.labels {
		if keep(l) {
			kept = append(kept, l)
		}
	}
	s.labels = kept
}
