package engine

import "sync"

// progress reports the percentage of completed pairs. Callbacks run under
// the lock so consumers observe a non-decreasing sequence.
type progress struct {
	mu    sync.Mutex
	fn    func(float64)
	total int
	done  int
	last  float64
}

func newProgress(total int, fn func(float64)) *progress {
	return &progress{fn: fn, total: total}
}

func (p *progress) advance() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	pct := 100.0
	if p.total > 0 && p.done < p.total {
		pct = float64(p.done) * 100 / float64(p.total)
	}
	if pct > p.last {
		p.last = pct
		p.fn(pct)
	}
}

func (p *progress) finish() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last < 100 {
		p.last = 100
		p.fn(100)
	}
}
