package mmring

import "os"

// RegionOptions menyediakan opsi konfigurasi untuk OpenFileRegion.
//
//   - UseMmap:  aktifkan memory-mapping untuk akses data lebih cepat
//   - FileMode: permission bits file backing (0 = default 0666)
//   - SyncDir:  fsync direktori setelah membuat file baru
//
// Semua bidang bersifat opsi; nilai 0 artinya gunakan default.
// Lihat DefaultRegionOptions() untuk nilai bawaan.
type RegionOptions struct {
	UseMmap  bool        // Gunakan memory-mapping untuk performa lebih baik
	FileMode os.FileMode // Permission file backing (0 = 0666)
	SyncDir  bool        // Sync direktori induk setelah create
}

// DefaultRegionOptions mengembalikan konfigurasi default yang digunakan
// OpenFileRegion bila caller tidak menyediakan opsi sendiri.
func DefaultRegionOptions() RegionOptions {
	return RegionOptions{
		UseMmap:  true,
		FileMode: 0o666,
		SyncDir:  false,
	}
}
