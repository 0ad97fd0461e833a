// Package sysmem wraps the kernel interfaces uxalloc's engine consumes:
// program-break extension, anonymous mapping creation/destruction, and the
// page-size configuration query. Every failure here is treated as fatal by
// the caller — these wrappers only translate kernel sentinel failures into
// Go errors, they never retry or recover.
package sysmem

import "errors"

// ErrBreakFailed is returned when the break-extension syscall reports
// failure (the kernel's break-moving call returned its sentinel value).
var ErrBreakFailed = errors.New("sysmem: program break extension failed")

// ErrMapFailed is returned when the anonymous-mapping syscall fails.
var ErrMapFailed = errors.New("sysmem: anonymous mapping failed")

// ErrUnmapFailed is returned when the unmapping syscall fails.
var ErrUnmapFailed = errors.New("sysmem: unmap failed")
