package pagesets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skia.org/perfsmoke/go/sklog/memlogging"
	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/action/mocks"
)

func timeoutRunner(ctx context.Context, navErr error) *mocks.Runner {
	r := &mocks.Runner{}
	r.On("Navigate", ctx, "http://www.ianfette.org/", 5*time.Second).Return(navErr)
	return r
}

func TestSafebrowsingPage_ExpectedTimeout_SuppressedAndWarned(t *testing.T) {
	logs, restore := memlogging.Install()
	defer restore()
	ctx := context.Background()
	timeout := &action.TimeoutError{URL: "http://www.ianfette.org/", Timeout: 5 * time.Second}
	r := timeoutRunner(ctx, timeout)

	ps := SafebrowsingPageSet(true)
	require.NoError(t, ps.Pages()[0].RunNavigateSteps(ctx, r))
	assert.Equal(t, []string{"Navigation timeout on page http://www.ianfette.org/"}, logs.Messages(sklogimpl.Warning))
	r.AssertExpectations(t)
}

func TestSafebrowsingPage_UnexpectedTimeout_ErrorReturnedUnchanged(t *testing.T) {
	logs, restore := memlogging.Install()
	defer restore()
	ctx := context.Background()
	timeout := &action.TimeoutError{URL: "http://www.ianfette.org/", Timeout: 5 * time.Second}

	err := SafebrowsingPageSet(false).Pages()[0].RunNavigateSteps(ctx, timeoutRunner(ctx, timeout))
	assert.Same(t, timeout, err)
	assert.Empty(t, logs.Messages(sklogimpl.Warning))
}

func TestSafebrowsingPage_OtherErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("net::ERR_CONNECTION_RESET")
	err := SafebrowsingPageSet(true).Pages()[0].RunNavigateSteps(ctx, timeoutRunner(ctx, boom))
	assert.Same(t, boom, err)
}

func TestSafebrowsingPage_Success(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, SafebrowsingPageSet(true).Pages()[0].RunNavigateSteps(ctx, timeoutRunner(ctx, nil)))
}

func TestSafebrowsingPageSet_Declaration(t *testing.T) {
	ps := SafebrowsingPageSet(false)
	require.Equal(t, 1, ps.Len())
	p := ps.Pages()[0]
	assert.Equal(t, "http://www.ianfette.org/", p.URL)
	assert.Equal(t, "../data/chrome_proxy_safebrowsing.json", p.ArchivePath())
	assert.Equal(t, 5*time.Second, p.Timeout())
	assert.Same(t, ps, p.PageSet)
}
