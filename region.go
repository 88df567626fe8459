package mmring

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Region adalah rentang byte kontigu dengan panjang tetap, dapat dibaca dan
// ditulis. Buffer tidak pernah mengubah ukuran region; pemilik region yang
// bertanggung jawab atas lifecycle-nya (unmap / close) setelah buffer selesai.
type Region interface {
	// Bytes returns the full backing slice. The slice identity and length
	// are fixed for the lifetime of the region.
	Bytes() []byte

	// Flush forces previously written bytes to durable backing storage.
	// Regions without a backing file return nil without doing anything.
	Flush() error
}

// MemRegion adalah region berbasis heap tanpa backing file. Flush selalu
// no-op. Berguna untuk pengujian dan untuk buffer yang tidak butuh durability.
type MemRegion struct {
	data []byte
}

// NewMemRegion mengalokasikan MemRegion sepanjang size byte (zero-filled).
func NewMemRegion(size int) *MemRegion {
	return &MemRegion{data: make([]byte, size)}
}

// Bytes mengembalikan slice backing region.
func (r *MemRegion) Bytes() []byte { return r.data }

// Flush adalah no-op untuk region tanpa backing file.
func (r *MemRegion) Flush() error { return nil }

// FileRegion merepresentasikan region yang didukung file fisik berukuran
// tepat `size` byte.
//
// Apabila opsi `UseMmap` aktif, field `data` berisi hasil dari `unix.Mmap`
// sehingga akses baca/tulis cukup melalui copy memori tanpa syscall I/O dan
// Flush memanggil msync. Bila mmap dimatikan, `data` adalah salinan heap dari
// isi file dan Flush menulis balik seluruh region lalu fsync.
//
// Region tidak pernah mengubah ukuran file; file yang sudah ada dengan ukuran
// berbeda ditolak dengan ErrSizeMismatch.
type FileRegion struct {
	file     *os.File // descriptor file fisik
	data     []byte   // region memory-map, atau salinan heap bila mmap dimatikan
	mapped   bool     // true bila data berasal dari unix.Mmap
	filePath string   // path file pada disk
	size     int64    // panjang region dalam byte
}

// OpenFileRegion membuka (atau membuat) file backing sepanjang size byte dan
// mengembalikan FileRegion di atasnya. Lihat RegionOptions untuk mode akses.
func OpenFileRegion(path string, size int64, opts RegionOptions) (*FileRegion, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size harus positif, dapat %d", ErrSizeMismatch, size)
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0o666
	}

	// Pastikan direktori ada
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("gagal membuat direktori: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, opts.FileMode)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file region: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file region: %w", err)
	}
	switch st.Size() {
	case size:
		// reopen, ukuran cocok
	case 0:
		if err := f.Truncate(size); err != nil {
			f.Close()
			return nil, fmt.Errorf("gagal mengalokasikan file region: %w", err)
		}
		if opts.SyncDir {
			if err := syncDir(filepath.Dir(path)); err != nil {
				f.Close()
				return nil, err
			}
		}
	default:
		f.Close()
		return nil, fmt.Errorf("%w: file %s berukuran %d, diminta %d",
			ErrSizeMismatch, path, st.Size(), size)
	}

	// Sidecar ditulis hanya setelah file data berhasil dibuka dan diukur,
	// supaya open yang gagal tidak meninggalkan config untuk size yang ditolak.
	if err := verifyOrWriteConfig(configPath(path), size, opts.UseMmap); err != nil {
		f.Close()
		return nil, err
	}

	r := &FileRegion{file: f, filePath: path, size: size}

	if opts.UseMmap {
		data, err := mapRegion(f, size)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gagal mmap file region: %w", err)
		}
		r.data = data
		r.mapped = true
		return r, nil
	}

	// Buffered mode: seluruh isi file disalin ke heap, Flush menulis balik.
	r.data = make([]byte, size)
	if _, err := f.ReadAt(r.data, 0); err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("gagal membaca file region: %w", err)
	}
	return r, nil
}

// Bytes mengembalikan slice backing region.
func (r *FileRegion) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r *FileRegion) Size() int64 { return r.size }

// Path returns the backing file path.
func (r *FileRegion) Path() string { return r.filePath }

// Mapped reports whether the region is memory-mapped rather than buffered.
func (r *FileRegion) Mapped() bool { return r.mapped }

// syncDir fsyncs a directory so a freshly created backing file survives a
// crash of the parent directory's metadata.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("gagal membuka direktori: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("gagal sync direktori: %w", err)
	}
	return nil
}
