package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.skia.org/perfsmoke/go/now"
	"go.skia.org/perfsmoke/go/sklog/memlogging"
	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
)

func TestStop_LogsElapsed(t *testing.T) {
	l, restore := memlogging.Install()
	defer restore()

	ctx := context.WithValue(context.Background(), now.ContextKey, now.StepProvider(time.Unix(0, 0), 63*time.Second))
	d := New(ctx, "smoke run").Stop()

	assert.Equal(t, 63*time.Second, d)
	assert.Equal(t, []string{"smoke run 1 minute 3 seconds"}, l.Messages(sklogimpl.Info))
}
