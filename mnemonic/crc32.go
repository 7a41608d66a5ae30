package mnemonic

import "hash/crc32"

func crc32String(s string) uint32 {
	return crc32.ChecksumIEEE([]byte(s))
}
