package receipt

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superexif/sendto/internal/receipt/mocks"
)

type delivered struct {
	dir       string
	selection []string
}

// runDispatcher starts the consumer loop and stops it at test end.
func runDispatcher(t *testing.T, nav Navigator) *Dispatcher {
	t.Helper()

	d := NewDispatcher(nav)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = d.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return d
}

func TestDispatchComputesAnchorFromFirstPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nav := mocks.NewMockNavigator(ctrl)
	got := make(chan delivered, 1)
	nav.EXPECT().
		OpenDirectoryThenSelect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(dir string, selection []string) error {
			got <- delivered{dir, selection}
			return nil
		})

	d := runDispatcher(t, nav)
	d.OnFilesReceived([]string{"/pics/2026/a.jpg", "/other/b.jpg"}, SourceSocket)

	select {
	case call := <-got:
		assert.Equal(t, "/pics/2026", call.dir, "anchor is the first path's directory")
		assert.Equal(t, []string{"/pics/2026/a.jpg", "/other/b.jpg"}, call.selection)
	case <-time.After(3 * time.Second):
		t.Fatal("navigator never invoked")
	}
}

func TestDispatchOncePerLogicalReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nav := mocks.NewMockNavigator(ctrl)
	got := make(chan delivered, 3)
	nav.EXPECT().
		OpenDirectoryThenSelect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(dir string, selection []string) error {
			got <- delivered{dir, selection}
			return nil
		}).
		Times(3)

	d := runDispatcher(t, nav)
	d.OnFilesReceived([]string{"/a/1.jpg"}, SourceColdStart)
	d.OnFilesReceived([]string{"/b/2.jpg"}, SourcePlatformOpen)
	d.OnFilesReceived([]string{"/c/3.jpg"}, SourceSocket)

	for i := 0; i < 3; i++ {
		select {
		case <-got:
		case <-time.After(3 * time.Second):
			t.Fatal("missing delivery")
		}
	}
	// No extra deliveries: ctrl.Finish enforces Times(3).
}

func TestBurstBeyondQueueCapacityDrains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	total := queueCapacity + 4
	got := make(chan delivered, total)
	nav := mocks.NewMockNavigator(ctrl)
	nav.EXPECT().
		OpenDirectoryThenSelect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(dir string, selection []string) error {
			got <- delivered{dir, selection}
			return nil
		}).
		Times(total)

	d := runDispatcher(t, nav)
	for i := 0; i < total; i++ {
		d.OnFilesReceived([]string{fmt.Sprintf("/burst/%d.jpg", i)}, SourceSocket)
	}

	for i := 0; i < total; i++ {
		select {
		case <-got:
		case <-time.After(3 * time.Second):
			t.Fatal("burst past queue capacity was not drained")
		}
	}
}

func TestNonAbsoluteInputNormalizedConsistently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nav := mocks.NewMockNavigator(ctrl)
	got := make(chan delivered, 1)
	nav.EXPECT().
		OpenDirectoryThenSelect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(dir string, selection []string) error {
			got <- delivered{dir, selection}
			return nil
		})

	d := runDispatcher(t, nav)
	d.OnFilesReceived([]string{"relative.jpg"}, SourceColdStart)

	select {
	case call := <-got:
		require.Len(t, call.selection, 1)
		assert.True(t, len(call.selection[0]) > 0 && call.selection[0][0] == '/',
			"caller-error relative path must be normalized to absolute, got %q", call.selection[0])
	case <-time.After(3 * time.Second):
		t.Fatal("navigator never invoked")
	}
}

func TestEmptyReceiptNeverReachesNavigator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nav := mocks.NewMockNavigator(ctrl)
	// No EXPECT: any call fails the test.

	d := runDispatcher(t, nav)
	d.OnFilesReceived(nil, SourceSocket)
	d.OnFilesReceived([]string{"", "  "}, SourceColdStart)

	time.Sleep(100 * time.Millisecond)
}

func TestNavigatorErrorDoesNotStopDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nav := mocks.NewMockNavigator(ctrl)
	got := make(chan delivered, 1)
	first := nav.EXPECT().
		OpenDirectoryThenSelect("/a", []string{"/a/bad.jpg"}).
		Return(errors.New("listing failed"))
	nav.EXPECT().
		OpenDirectoryThenSelect("/b", []string{"/b/good.jpg"}).
		DoAndReturn(func(dir string, selection []string) error {
			got <- delivered{dir, selection}
			return nil
		}).
		After(first)

	d := runDispatcher(t, nav)
	d.OnFilesReceived([]string{"/a/bad.jpg"}, SourceSocket)
	d.OnFilesReceived([]string{"/b/good.jpg"}, SourceSocket)

	select {
	case call := <-got:
		assert.Equal(t, "/b", call.dir)
	case <-time.After(3 * time.Second):
		t.Fatal("dispatcher stopped after navigator error")
	}
}
