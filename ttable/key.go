package ttable

import "hash/fnv"

// Key is the transposition table's equality unit: the active-box
// bitmap and the player-reach bitmap, each packed into a byte string
// so two Keys compare equal exactly when two positions are the same
// box configuration with the same player-reachable region.
type Key struct {
	boxes string
	reach string
}

// NewKey packs two bitmaps (len N, one bit per board square) into a Key.
func NewKey(boxBitmap, reachBitmap []bool) Key {
	return Key{boxes: packBits(boxBitmap), reach: packBits(reachBitmap)}
}

func packBits(bits []bool) string {
	buf := make([]byte, (len(bits)+7)/8)
	for i, set := range bits {
		if set {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	return string(buf)
}

// hash derives the FNV-1a hash (hash/fnv) backing the table's bucket
// index, from the box bitmap and player-reach region.
func (k Key) hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.boxes))
	_, _ = h.Write([]byte(k.reach))
	return h.Sum64()
}
