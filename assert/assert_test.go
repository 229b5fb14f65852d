package assert_test

import (
	"testing"

	"github.com/latticetree/rbtree/assert"
)

func TestTrue_PassesWhenValueIsTrue(t *testing.T) {
	t.Parallel()

	assert.True(true)
}

func TestTrue_PanicsWhenValueIsFalse(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected True(false) to panic")
		}
	}()

	assert.True(false)
}

func TestTrue_FormatsMessage(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r != "node 42 is detached" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	assert.True(false, "node %d is detached", 42)
}

func TestNil_PanicsOnNonNil(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Nil(non-nil) to panic")
		}
	}()

	assert.Nil(1)
}

func TestNotNil_PassesOnNonNil(t *testing.T) {
	t.Parallel()

	assert.NotNil(1)
}
