// Package random builds values of plain data types from a source of random
// 32-bit words.
package random

import (
	"encoding/binary"
	"unsafe"

	"epsilon/hal"
)

// Source yields one random word per call. hal.Entropy satisfies it.
type Source interface {
	Random() uint32
}

// Plain lists the types Value can produce.
type Plain interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 |
		hal.Color | hal.Point | hal.Rect
}

// Fill zeroes p and overwrites it four bytes at a time with words from src.
// The last word is truncated to the bytes that remain.
func Fill(src Source, p []byte) {
	clear(p)
	var word [4]byte
	for i := 0; i < len(p); i += 4 {
		binary.LittleEndian.PutUint32(word[:], src.Random())
		copy(p[i:], word[:])
	}
}

// Value returns a random T. Numbers and colors take every bit from src.
// Points and rects are drawn inside the screen (see Point and Rect).
func Value[T Plain](src Source) T {
	var v T
	switch p := any(&v).(type) {
	case *hal.Point:
		*p = Point(src)
	case *hal.Rect:
		*p = Rect(src)
	default:
		Fill(src, unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
	}
	return v
}

// Uint32n returns a word from src reduced modulo n. n must not be zero.
func Uint32n(src Source, n uint32) uint32 {
	return src.Random() % n
}

// Point returns a point on screen: x < ScreenWidth, y < ScreenHeight.
func Point(src Source) hal.Point {
	return hal.Point{
		X: uint16(Uint32n(src, uint32(hal.ScreenWidth))),
		Y: uint16(Uint32n(src, uint32(hal.ScreenHeight))),
	}
}

// Rect returns a rect whose origin is on screen. W and H are both reduced
// modulo ScreenWidth, so H can exceed ScreenHeight and the rect can extend
// below the screen. Use ClampedRect when that matters.
func Rect(src Source) hal.Rect {
	return hal.Rect{
		X: uint16(Uint32n(src, uint32(hal.ScreenWidth))),
		Y: uint16(Uint32n(src, uint32(hal.ScreenHeight))),
		W: uint16(Uint32n(src, uint32(hal.ScreenWidth))),
		H: uint16(Uint32n(src, uint32(hal.ScreenWidth))),
	}
}

// ClampedRect is Rect with H reduced modulo ScreenHeight.
func ClampedRect(src Source) hal.Rect {
	return hal.Rect{
		X: uint16(Uint32n(src, uint32(hal.ScreenWidth))),
		Y: uint16(Uint32n(src, uint32(hal.ScreenHeight))),
		W: uint16(Uint32n(src, uint32(hal.ScreenWidth))),
		H: uint16(Uint32n(src, uint32(hal.ScreenHeight))),
	}
}
