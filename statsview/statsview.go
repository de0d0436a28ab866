// Package statsview serves runtime statistics (heap, goroutines, GC) over
// HTTP while the emulator runs.
package statsview

import (
	"fmt"
	"io"
	"net"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is the address suggested by the -statsview flag.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// URL returns the page served for addr.
func URL(addr string) (string, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("statsview address %q: %w", addr, err)
	}
	return "http://" + addr + path, nil
}

// Launch starts the stats server for addr on its own goroutine and reports
// its URL to output.
func Launch(output io.Writer, addr string) error {
	u, err := URL(addr)
	if err != nil {
		return err
	}
	viewer.SetConfiguration(viewer.WithAddr(addr))
	go statsview.New().Start()
	fmt.Fprintf(output, "stats server available at %s\n", u)
	return nil
}
