package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	f := func() (int, error) {
		return 1, errors.New("oops")
	}

	var r int

	assert.PanicsWithError(t, "oops", func() {
		r = Get(f())
	})

	assert.Equal(t, 0, r)

	f2 := func() (string, error) {
		return "A", nil
	}

	assert.Equal(t, "A", Get(f2()))
}

func TestDo(t *testing.T) {
	assert.PanicsWithError(t, "oops", func() {
		Do(errors.New("oops"))
	})

	assert.NotPanics(t, func() {
		Do(nil)
	})
}
