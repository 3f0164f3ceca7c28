//go:build tinygo

package hal

// Firmware entry points. Bodyless //export declarations are resolved by the
// linker against the symbols the calculator firmware exposes to apps.
// Composite values are passed as their packed images (see abi.go).

//export eadk_display_push_rect
func eadk_display_push_rect(rect uint64, pixels *uint16)

//export eadk_display_push_rect_uniform
func eadk_display_push_rect_uniform(rect uint64, color uint16)

//export eadk_display_wait_for_vblank
func eadk_display_wait_for_vblank()

//export eadk_display_draw_string
func eadk_display_draw_string(text *byte, point uint32, largeFont bool, textColor, backgroundColor uint16)

//export eadk_backlight_set_brightness
func eadk_backlight_set_brightness(brightness uint8)

//export eadk_backlight_brightness
func eadk_backlight_brightness() uint8

//export eadk_timing_usleep
func eadk_timing_usleep(us uint32)

//export eadk_timing_msleep
func eadk_timing_msleep(ms uint32)

//export eadk_timing_millis
func eadk_timing_millis() uint64

//export eadk_random
func eadk_random() uint32

//export eadk_keyboard_scan
func eadk_keyboard_scan() uint64

//export eadk_event_get
func eadk_event_get(timeout *int32) uint16

//go:extern eadk_external_data
var eadk_external_data *byte

//go:extern eadk_external_data_size
var eadk_external_data_size uintptr
