package browse

// Router is the navigation capability the controller consumes
type Router interface {
	CurrentPath() string
	Navigate(path string)
	Replace(path string)
}

// History is an in-memory Router with back and forward stacks
type History struct {
	entries []string
	index   int
}

// NewHistory creates a History positioned at start, or StartPath when start is empty
func NewHistory(start string) *History {
	if start == "" {
		start = StartPath
	}
	return &History{entries: []string{start}}
}

// CurrentPath returns the active path
func (h *History) CurrentPath() string {
	return h.entries[h.index]
}

// Navigate pushes path, dropping any forward entries.
// Navigating to the current path is a no-op.
func (h *History) Navigate(path string) {
	if path == h.CurrentPath() {
		return
	}
	h.entries = append(h.entries[:h.index+1], path)
	h.index++
}

// Replace swaps the active path without adding an entry
func (h *History) Replace(path string) {
	h.entries[h.index] = path
}

// Back moves to the previous entry and reports whether it moved
func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves to the next entry and reports whether it moved
func (h *History) Forward() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}
