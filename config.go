package mmring

import (
	"encoding/json"
	"fmt"
	"os"
)

// persistedConfig captures the subset of region parameters that affects the
// on-disk layout. UseMmap is recorded for inspection only; the access mode is
// a runtime choice and may differ between opens.
type persistedConfig struct {
	Size    int64 `json:"size"`
	UseMmap bool  `json:"use_mmap"`
}

func configPath(base string) string { return base + ".config" }

// verifyOrWriteConfig loads an existing .config file if present and verifies
// it matches the requested region size. If the file does not exist, it is
// created. On a size mismatch it returns an ErrSizeMismatch-wrapped error
// before any mapping is created.
func verifyOrWriteConfig(path string, size int64, useMmap bool) error {
	want := persistedConfig{Size: size, UseMmap: useMmap}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// first time: write file
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create config file: %w", err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(want); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	var have persistedConfig
	if err := json.NewDecoder(f).Decode(&have); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if have.Size != size {
		return fmt.Errorf("%w: config %s menyimpan size %d, diminta %d",
			ErrSizeMismatch, path, have.Size, size)
	}
	return nil
}
