package pairwise

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/warp/dtw"
)

// Key returns the cache key of the DTW distance between a and b under opts.
// Key(a, b, o) == Key(b, a, o). Only Window, Band and SlopePenalty take part.
func Key(a, b []float64, opts dtw.Options) string {
	return pairKey(fingerprint(a), fingerprint(b), opts)
}

func pairKey(ha, hb uint64, opts dtw.Options) string {
	if hb < ha {
		ha, hb = hb, ha
	}

	var buf [8 * 5]byte
	binary.LittleEndian.PutUint64(buf[0:], ha)
	binary.LittleEndian.PutUint64(buf[8:], hb)
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(opts.Window)))
	binary.LittleEndian.PutUint64(buf[24:], uint64(opts.Band))
	binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(opts.SlopePenalty))

	return strconv.FormatUint(xxhash.Sum64(buf[:]), 16)
}

// fingerprint hashes the length and bit patterns of s.
func fingerprint(s []float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = d.Write(buf[:])
	for _, v := range s {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
