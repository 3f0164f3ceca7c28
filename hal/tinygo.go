//go:build tinygo

package hal

import "unsafe"

type firmwareHAL struct{}

// New returns the HAL backed by the calculator firmware.
func New() HAL {
	return firmwareHAL{}
}

// The firmware has no log channel; callers check for nil.
func (firmwareHAL) Logger() Logger       { return nil }
func (firmwareHAL) Display() Display     { return firmwareDisplay{} }
func (firmwareHAL) Backlight() Backlight { return firmwareBacklight{} }
func (firmwareHAL) Timing() Timing       { return firmwareTiming{} }
func (firmwareHAL) Entropy() Entropy     { return firmwareEntropy{} }
func (firmwareHAL) Input() Input         { return firmwareInput{} }

func (firmwareHAL) ExternalData() []byte {
	if eadk_external_data == nil || eadk_external_data_size == 0 {
		return nil
	}
	return unsafe.Slice(eadk_external_data, eadk_external_data_size)
}

type firmwareDisplay struct{}

func (firmwareDisplay) PushRect(r Rect, pixels []Color) {
	if len(pixels) == 0 {
		return
	}
	// Color is a single uint16, so the slice is already the firmware's
	// pixel array.
	eadk_display_push_rect(PackRect(r), (*uint16)(unsafe.Pointer(&pixels[0])))
}

func (firmwareDisplay) PushRectUniform(r Rect, c Color) {
	eadk_display_push_rect_uniform(PackRect(r), PackColor(c))
}

func (firmwareDisplay) WaitForVBlank() {
	eadk_display_wait_for_vblank()
}

var emptyString = [1]byte{0}

func (firmwareDisplay) DrawString(text []byte, p Point, large bool, fg, bg Color) {
	ptr := &emptyString[0]
	if len(text) > 0 {
		ptr = &text[0]
	}
	eadk_display_draw_string(ptr, PackPoint(p), large, PackColor(fg), PackColor(bg))
}

type firmwareBacklight struct{}

func (firmwareBacklight) SetBrightness(level uint8) { eadk_backlight_set_brightness(level) }
func (firmwareBacklight) Brightness() uint8         { return eadk_backlight_brightness() }

type firmwareTiming struct{}

func (firmwareTiming) Usleep(us uint32) { eadk_timing_usleep(us) }
func (firmwareTiming) Msleep(ms uint32) { eadk_timing_msleep(ms) }
func (firmwareTiming) Millis() uint64   { return eadk_timing_millis() }

type firmwareEntropy struct{}

func (firmwareEntropy) Random() uint32 { return eadk_random() }

type firmwareInput struct{}

func (firmwareInput) KeyboardScan() uint64           { return eadk_keyboard_scan() }
func (firmwareInput) EventGet(timeout *int32) uint16 { return eadk_event_get(timeout) }
