package view

import (
	"encoding/hex"
	"fmt"

	"github.com/minio/highwayhash"
)

const DefaultHashKey = "6d656d766965772d66696e6765727072696e742d6b65792d3030303030303031"

func hashKey() ([]byte, error) {
	keyHex := ViperGetString("hash_key")
	if keyHex == "" {
		keyHex = DefaultHashKey
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHashKey, err)
	}
	if len(key) != highwayhash.Size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHashKey, highwayhash.Size, len(key))
	}
	return key, nil
}

// Fingerprint returns the keyed HighwayHash-64 of data.
func Fingerprint(data []byte) (uint64, error) {
	key, err := hashKey()
	if err != nil {
		return 0, err
	}
	return highwayhash.Sum64(data, key), nil
}

func FormatFingerprint(sum uint64) string {
	return fmt.Sprintf("%016X", sum)
}

type Info struct {
	Name        string `json:"name,omitempty"`
	Size        int    `json:"size"`
	DisplaySize string `json:"display_size"`
	Rows        int    `json:"rows"`
	LastOffset  string `json:"last_offset,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

func (v *Viewer) Info(name string) (*Info, error) {
	sum, err := Fingerprint(v.data)
	if err != nil {
		return nil, err
	}
	info := Info{
		Name:        name,
		Size:        len(v.data),
		DisplaySize: FormatSize(int64(len(v.data))),
		Rows:        len(v.rows),
		Fingerprint: FormatFingerprint(sum),
	}
	if len(v.rows) > 0 {
		info.LastOffset = v.rows[len(v.rows)-1].Offset
	}
	return &info, nil
}
