package shutdown

import (
	"sync"
	"testing"
	"time"

	"csv-reader/internal/logger"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type component struct {
	name  string
	rec   *recorder
	block chan struct{}
}

func (c *component) Shutdown() {
	if c.block != nil {
		<-c.block
	}
	c.rec.add(c.name)
}

func TestShutdownReverseOrder(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.NewNop())
	m.Register("first", &component{name: "first", rec: rec})
	m.Register("second", &component{name: "second", rec: rec})

	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, rec.order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.NewNop())
	m.Register("only", &component{name: "only", rec: rec})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"only"}, rec.order)
}

func TestShutdownStepTimeout(t *testing.T) {
	rec := &recorder{}
	block := make(chan struct{})
	defer close(block)

	m := NewManager(logger.NewNop())
	m.SetStepTimeout(10 * time.Millisecond)
	m.Register("stuck", &component{name: "stuck", rec: rec, block: block})
	m.Register("quick", &component{name: "quick", rec: rec})

	m.Shutdown()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"quick"}, rec.order)
}
