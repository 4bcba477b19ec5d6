//go:build unit

package errs_test

import (
	"strings"
	"testing"

	"gongsil-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errs.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("marked error matches both causes", func(t *testing.T) {
		base := errs.New("origin said no")
		marked := errs.Mark(errs.Wrap(base, "create reservation"), errSentinel)

		assert.True(t, errs.Is(marked, errSentinel))
		assert.True(t, errs.Is(marked, base))
		assert.Equal(t, "create reservation: origin said no", marked.Error())
	})

	t.Run("nil error becomes the mark itself", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.NoError(t, errs.Wrapf(nil, "noop %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "handler")

	lines := errs.ExtractStackLines(err, 5)
	assert.LessOrEqual(t, len(lines), 5)
	assert.NotEmpty(t, lines)
	for _, l := range lines {
		assert.NotEmpty(t, strings.TrimSpace(l))
	}
	assert.Nil(t, errs.ExtractStackLines(nil, 5))
}
