package pool

import (
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeMatchesSerial(t *testing.T) {
	pools := []*Pool{nil, NewPool(4)}
	for _, p := range pools {
		results := p.Parallelize(10, func(i int) interface{} { return i * i })
		for i, r := range results {
			assert.Equal(t, i*i, r)
		}
		if p != nil {
			p.TearDown()
		}
	}
}

func TestSearchFindsCount(t *testing.T) {
	var calls int64
	p := NewPool(4)
	defer p.TearDown()

	results := p.Search(5, func() interface{} {
		n := atomic.AddInt64(&calls, 1)
		if n%3 == 0 {
			return n
		}
		return nil
	})

	assert.Len(t, results, 5)
	for _, r := range results {
		assert.NotNil(t, r)
	}
}

func TestSearchAloneFindsCount(t *testing.T) {
	var n int
	f := func() interface{} {
		n++
		if n%2 == 0 {
			return n
		}
		return nil
	}
	results := searchAlone(f, 3)
	assert.Len(t, results, 3)
}

func TestLockedReaderReadsAllBytes(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 1024)
	lr := NewLockedReader(bytes.NewReader(data))

	done := make(chan struct{})
	var total int64
	for i := 0; i < 8; i++ {
		go func() {
			buf := make([]byte, 16)
			for {
				n, err := lr.Read(buf)
				atomic.AddInt64(&total, int64(n))
				if err != nil {
					done <- struct{}{}
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, int64(len(data)), total)
}
