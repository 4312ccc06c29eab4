package nonce

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradeforge/yobit/api"
)

func TestFileStoreStrictlyIncreasing(t *testing.T) {
	store := MakeFileStore(t.TempDir(), "test-key")

	var last int64
	for i := 0; i < 100; i++ {
		n, e := store.Next()
		if !assert.NoError(t, e) {
			return
		}
		assert.Equal(t, last+1, n)
		last = n
	}
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store := MakeFileStore(dir, "test-key")
	for i := 0; i < 5; i++ {
		_, e := store.Next()
		if !assert.NoError(t, e) {
			return
		}
	}

	// a new store over the same directory and key simulates a process restart
	restarted := MakeFileStore(dir, "test-key")
	n, e := restarted.Next()
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, int64(6), n)
}

func TestFileStoreValueIsDurableBeforeUse(t *testing.T) {
	dir := t.TempDir()
	store := MakeFileStore(dir, "test-key")

	n, e := store.Next()
	if !assert.NoError(t, e) {
		return
	}

	// the file on disk must already hold the value that was handed out
	data, e := os.ReadFile(store.filepath)
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, strconv.FormatInt(n, 10), string(data))
}

func TestFileStoreKeyedByAPIKey(t *testing.T) {
	dir := t.TempDir()

	store1 := MakeFileStore(dir, "key-one")
	store2 := MakeFileStore(dir, "key-two")
	assert.NotEqual(t, store1.filepath, store2.filepath)

	// sequences advance independently per key
	n1, e := store1.Next()
	assert.NoError(t, e)
	n1b, e := store1.Next()
	assert.NoError(t, e)
	n2, e := store2.Next()
	assert.NoError(t, e)

	assert.Equal(t, int64(1), n1)
	assert.Equal(t, int64(2), n1b)
	assert.Equal(t, int64(1), n2)
}

func TestFileStoreExhaustion(t *testing.T) {
	dir := t.TempDir()
	store := MakeFileStore(dir, "test-key")

	e := os.MkdirAll(dir, 0700)
	if !assert.NoError(t, e) {
		return
	}
	e = os.WriteFile(store.filepath, []byte(strconv.FormatInt(api.MaxNonce, 10)), 0600)
	if !assert.NoError(t, e) {
		return
	}

	_, e = store.Next()
	var exhausted *api.ErrNonceExhausted
	assert.True(t, errors.As(e, &exhausted), "expected ErrNonceExhausted, got %v", e)

	// exhaustion is permanent, retrying must not wrap or reset
	_, e = store.Next()
	assert.True(t, errors.As(e, &exhausted))
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := MakeFileStore(dir, "test-key")

	e := os.WriteFile(store.filepath, []byte("garbage"), 0600)
	if !assert.NoError(t, e) {
		return
	}

	_, e = store.Next()
	assert.Error(t, e)
}

func TestFileStoreConcurrentNext(t *testing.T) {
	store := MakeFileStore(t.TempDir(), "test-key")

	const goroutines = 20
	var wg sync.WaitGroup
	seen := sync.Map{}

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, e := store.Next()
			assert.NoError(t, e)
			_, loaded := seen.LoadOrStore(n, true)
			assert.False(t, loaded, "nonce %d was handed out twice", n)
		}()
	}
	wg.Wait()
}
