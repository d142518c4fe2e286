package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// DefaultBarWidth is the number of cells in the loading bar
const DefaultBarWidth = 50

// ProgressBar draws "  [####------] 40.0%" on a single terminal line
type ProgressBar struct {
	mu    sync.Mutex
	out   io.Writer
	width int
}

// NewProgressBar creates a bar of DefaultBarWidth cells
func NewProgressBar(out io.Writer) *ProgressBar {
	return &ProgressBar{out: out, width: DefaultBarWidth}
}

// Update redraws the bar. The final update ends the line.
func (b *ProgressBar) Update(done, total int) {
	if total <= 0 {
		return
	}
	if done > total {
		done = total
	}
	if done < 0 {
		done = 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	percent := 100 * float64(done) / float64(total)
	filled := b.width * done / total
	bar := strings.Repeat("#", filled) + strings.Repeat("-", b.width-filled)

	end := "\r"
	if done == total {
		end = "\n"
	}
	fmt.Fprintf(b.out, "  [%s] %.1f%%%s", bar, percent, end)
}
