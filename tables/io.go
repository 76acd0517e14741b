package tables

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

// File names under the cache directory, one per table, matching
// spec.md §6's on-disk table list: raw little-endian bytes in index
// order, no header, integrity checked by file size only.
const (
	fileMoveTwist       = "move_twist.bin"
	fileMoveFlip        = "move_flip.bin"
	fileMoveSliceSorted = "move_slice_sorted.bin"
	fileMoveSliceComb   = "move_slice_comb.bin"
	fileMoveUEdges      = "move_u_edges.bin"
	fileMoveDEdges      = "move_d_edges.bin"
	fileMoveCorners     = "move_corners.bin"
	fileMoveUDEdges     = "move_ud_edges.bin"
	filePruneTwistSlice = "prune_twist_slice.bin"
	filePruneFlipSlice  = "prune_flip_slice.bin"
	filePruneCorners    = "prune_corners.bin"
	filePruneUDEdges    = "prune_ud_edges.bin"
	filePruneCornSlice  = "prune_corn_slice.bin"
)

func writeUint16(dir, name string, data []uint16) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	buf := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	_, err = f.Write(buf)
	return err
}

func readUint16(dir, name string, n int) ([]uint16, error) {
	buf, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	if len(buf) != 2*n {
		return nil, ErrTableIOFailure
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[2*i:])
	}
	return out, nil
}

func writeUint8(dir, name string, data []uint8) error {
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

func readUint8(dir, name string, n int) ([]uint8, error) {
	buf, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	if len(buf) != n {
		return nil, ErrTableIOFailure
	}
	return buf, nil
}
