package memlogging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
)

func TestInstall_CapturesAndRestores(t *testing.T) {
	prev := sklogimpl.GetLogger()
	l, restore := Install()
	sklog.Warningf("Navigation timeout on page %s", "http://example.com/")
	sklog.Info("hello ", 3)
	restore()

	assert.Equal(t, []string{"Navigation timeout on page http://example.com/"}, l.Messages(sklogimpl.Warning))
	assert.Equal(t, []string{"hello 3"}, l.Messages(sklogimpl.Info))
	assert.Equal(t, prev, sklogimpl.GetLogger())
}
