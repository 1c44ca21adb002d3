package id3v2

import "hash/crc32"

// CRC32 computes the checksum spec.md §6 calls `compute_crc32`. No
// example in the pack reimplements CRC-32 (it is a solved, bit-exact
// problem with a single canonical stdlib implementation), so this wraps
// hash/crc32 directly rather than hunting for a third-party equivalent.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
