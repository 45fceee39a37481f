package iofs

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// ProgressReader wraps a file with a progress bar that counts read bytes.
// The returned function finishes the bar. If the file size is unknown,
// the file is returned as is.
func ProgressReader(f *os.File, prefix string) (io.Reader, func()) {
	info, err := f.Stat()
	if err != nil {
		return f, func() {}
	}
	bar := pb.Full.Start64(info.Size())
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar.NewProxyReader(f), func() { bar.Finish() }
}
