package picojpeg

import "github.com/pkg/errors"

// InvalidArgumentError reports a caller-supplied value outside the domain the
// codec accepts: an out-of-range quality factor, or image dimensions that are
// not multiples of 8.
type InvalidArgumentError string

func (e InvalidArgumentError) Error() string { return "picojpeg: invalid argument: " + string(e) }

// InputUnreadableError reports that a raster or container file could not be
// opened or read.
type InputUnreadableError string

func (e InputUnreadableError) Error() string { return "picojpeg: input unreadable: " + string(e) }

// MalformedError reports a structurally invalid container: a truncated
// chunk, an inconsistent length prefix, an unrecognized Huffman prefix, or an
// AC run that overruns the block.
type MalformedError string

func (e MalformedError) Error() string { return "picojpeg: malformed container: " + string(e) }

// OverflowError reports a DCT coefficient outside the category codec's
// encodable range. Encoders clamp and log; a correct encoder never produces
// a container that causes a decoder to observe this.
type OverflowError string

func (e OverflowError) Error() string { return "picojpeg: coefficient overflow: " + string(e) }

// OutOfMemoryError reports a failed allocation.
type OutOfMemoryError string

func (e OutOfMemoryError) Error() string { return "picojpeg: out of memory: " + string(e) }

// wrapStage annotates err with the name of the pipeline stage that produced
// it, preserving the original error so callers can still inspect its kind
// with errors.As.
func wrapStage(stage string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, stage)
}
