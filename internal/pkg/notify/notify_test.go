package notify

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf, nil)

	n.Error(MsgFetchFailed)
	n.Success("Berhasil")

	assert.Equal(t, "✗ "+MsgFetchFailed+"\n✓ Berhasil\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Error(MsgSendFailed)
		}()
	}
	wg.Wait()
	r.Success("ok")

	assert.Len(t, r.Notifications(), 11)
	assert.Len(t, r.Errors(), 10)

	r.Reset()
	assert.Empty(t, r.Notifications())
}
