package library

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_KeyCollisionDoesNotShareResult(t *testing.T) {
	ld := NewLoader()
	ld.key = func(string) string { return "fixed" }

	const other = `[{"name":"other"}]`
	const mine = `[{"name":"mine","version":"1.0.0"}]`

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = ld.group.Do("fixed", func() (any, error) {
			close(started)
			<-release
			libs, err := Load(other)
			return loadResult{data: other, libs: libs}, err
		})
	}()
	<-started

	got := make(chan Libraries, 1)
	errs := make(chan error, 1)
	go func() {
		libs, err := ld.Load(context.Background(), mine)
		got <- libs
		errs <- err
	}()

	// Give the second caller time to join the in-flight call before it finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	<-done

	require.NoError(t, <-errs)
	libs := <-got
	require.Len(t, libs, 1)
	assert.Equal(t, "mine", libs[0].Name)
	assert.Equal(t, "1.0.0", libs[0].Version)
}

func TestLoader_KeyCollisionFailureIsOwnResult(t *testing.T) {
	ld := NewLoader()
	ld.key = func(string) string { return "fixed" }

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _, _ = ld.group.Do("fixed", func() (any, error) {
			close(started)
			<-release
			libs, err := Load(`[]`)
			return loadResult{data: `[]`, libs: libs}, err
		})
	}()
	<-started

	errs := make(chan error, 1)
	go func() {
		_, err := ld.Load(context.Background(), `{broken`)
		errs <- err
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.ErrorIs(t, <-errs, ErrParse)
}
