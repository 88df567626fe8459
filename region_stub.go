//go:build !unix

package mmring

import "os"

// Non-unix platforms fall back to buffered file regions; set UseMmap to
// false in RegionOptions there.

func mapRegion(*os.File, int64) ([]byte, error) { return nil, ErrMmapUnsupported }

func syncRegion([]byte) error { return ErrMmapUnsupported }

func unmapRegion([]byte) error { return nil }
