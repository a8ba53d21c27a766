package numerator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestFreshBase(t *testing.T) {
	svc := New(DefaultConfig())
	assert.Equal(t, "1", svc.Suggest("9400"))
}

func TestSuggestAfterObserve(t *testing.T) {
	svc := New(DefaultConfig())
	svc.Observe("9400", "1")
	svc.Observe("9400", "7")
	svc.Observe("9400", "3")
	assert.Equal(t, "8", svc.Suggest("9400"))
	assert.Equal(t, "1", svc.Suggest("9500"))
}

func TestObserveIgnoresFreeText(t *testing.T) {
	svc := New(DefaultConfig())
	svc.Observe("9400", "5")
	svc.Observe("9400", "rev-A")
	svc.Observe("9400", "")
	svc.Observe("9400", "-2")
	assert.Equal(t, "6", svc.Suggest("9400"))
}

func TestObserveInvoice(t *testing.T) {
	svc := New(DefaultConfig())
	svc.ObserveInvoice("9400.12")
	svc.ObserveInvoice("9400")
	assert.Equal(t, "13", svc.Suggest("9400"))
}

func TestPadWidth(t *testing.T) {
	svc := New(Config{PadWidth: 3})
	svc.Observe("9400", "41")
	assert.Equal(t, "042", svc.Suggest("9400"))
}

func TestConcurrentObserve(t *testing.T) {
	svc := New(DefaultConfig())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 1; j <= 50; j++ {
				svc.Observe("9400", "50")
				_ = svc.Suggest("9400")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, "51", svc.Suggest("9400"))
}
