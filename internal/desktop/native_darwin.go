//go:build darwin

package desktop

/*
#cgo CFLAGS: -Werror -fmodules -fobjc-arc -x objective-c
#cgo LDFLAGS: -framework AppKit -framework QuartzCore

#import <AppKit/AppKit.h>
#import <QuartzCore/CAMetalLayer.h>

// gpushell_metal_layer makes the window's content view host a CAMetalLayer
// and returns the layer. The view keeps the layer alive.
static void *gpushell_metal_layer(void *nswindow) {
	NSWindow *window = (__bridge NSWindow *)nswindow;
	NSView *view = window.contentView;
	if ([view.layer isKindOfClass:[CAMetalLayer class]]) {
		return (__bridge void *)view.layer;
	}
	CAMetalLayer *layer = [CAMetalLayer layer];
	layer.contentsScale = window.backingScaleFactor;
	view.layer = layer;
	view.wantsLayer = YES;
	return (__bridge void *)layer;
}
*/
import "C"

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// nativeHandles returns the CAMetalLayer backing w, which is what the Metal
// and MoltenVK surfaces are created from.
func nativeHandles(w *glfw.Window) (display, handle uintptr) {
	layer := C.gpushell_metal_layer(unsafe.Pointer(w.GetCocoaWindow()))
	return 0, uintptr(layer)
}
