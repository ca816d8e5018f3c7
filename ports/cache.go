package ports

import "gowrangle/domain/frame"

// FrameCache persists frames as flat files keyed by filename. The row
// index is stored as the leading column.
type FrameCache interface {
	Exists(filename string) (bool, error)
	Read(filename string) (*frame.Frame, error)
	Write(filename string, f *frame.Frame) error
}
