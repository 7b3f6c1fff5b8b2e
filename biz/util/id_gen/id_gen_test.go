package id_gen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.True(t, strings.HasPrefix(id, accountPrefix+"-"))
		assert.False(t, seen[id], "duplicate id: %s", id)
		seen[id] = true
	}
}

func TestIDGenerator_Prefix(t *testing.T) {
	gen := NewIDGenerator("sess", 1)
	defer gen.Stop()

	assert.True(t, strings.HasPrefix(gen.NewID(), "sess-"))
}

func TestIDGenerator_Stop(t *testing.T) {
	idgen := NewIDGenerator(accountPrefix, 2)
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ticker.C:
			t.Logf("id: %s", idgen.NewID())
			if i > 10 {
				idgen.Stop()
			}
		case <-idgen.stop:
			return
		}
	}
}
