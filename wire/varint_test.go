package wire

import (
	"math"
	"testing"
)

func TestUvarintBoundaries(t *testing.T) {
	cases := []struct {
		v    uint64
		size int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{268435455, 4},
		{268435456, 5},
		// 2^63-1 is 63 value bits, nine full 7-bit groups; one more bit
		// pushes the encoding to the 10-byte maximum.
		{math.MaxInt64, 9},
		{1 << 63, 10},
		{math.MaxUint64, 10},
	}
	for _, c := range cases {
		got := SizeUvarint(c.v)
		if got != c.size {
			t.Errorf("SizeUvarint(%d) = %d, want %d", c.v, got, c.size)
		}
		buf := make([]byte, got)
		n, err := PutUvarint(buf, c.v)
		if err != nil {
			t.Fatalf("PutUvarint(%d): %v", c.v, err)
		}
		if n != c.size {
			t.Errorf("PutUvarint(%d) wrote %d bytes, want %d", c.v, n, c.size)
		}
		gotV, gotN, err := Uvarint(buf)
		if err != nil {
			t.Fatalf("Uvarint round-trip %d: %v", c.v, err)
		}
		if gotV != c.v || gotN != c.size {
			t.Errorf("Uvarint(%v) = (%d, %d), want (%d, %d)", buf, gotV, gotN, c.v, c.size)
		}
	}
}

func TestUvarintTruncated(t *testing.T) {
	_, _, err := Uvarint([]byte{0x80})
	if err == nil {
		t.Fatal("expected truncation error")
	}
}

func TestVarint32Negative(t *testing.T) {
	buf := make([]byte, 1)
	n, err := PutVarint32(buf, -1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || buf[0] != 0x7f {
		t.Errorf("PutVarint32(-1) = %x, want [7f]", buf[:n])
	}
	v, _, err := Varint32(buf)
	if err != nil || v != -1 {
		t.Errorf("Varint32 round trip: got (%d, %v), want -1", v, err)
	}
}

func TestVarint32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 63, 64, -64, -65, math.MaxInt32, math.MinInt32, 1000000, -1000000}
	for _, v := range values {
		size := SizeVarint32(v)
		buf := make([]byte, size)
		n, err := PutVarint32(buf, v)
		if err != nil {
			t.Fatalf("PutVarint32(%d): %v", v, err)
		}
		if n != size {
			t.Errorf("PutVarint32(%d) wrote %d, SizeVarint32 said %d", v, n, size)
		}
		got, gotN, err := Varint32(buf)
		if err != nil {
			t.Fatalf("Varint32(%d) round trip: %v", v, err)
		}
		if got != v || gotN != size {
			t.Errorf("Varint32 round trip for %d: got (%d, %d)", v, got, gotN)
		}
	}
}

func TestVarint32RejectsOverlong(t *testing.T) {
	// Five continuation bytes followed by a terminator: six bytes, wider
	// than the 5-byte natural width for a 32-bit signed value.
	buf := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}
	_, _, err := Varint32(buf)
	if err == nil {
		t.Fatal("expected overlong varint32 to be rejected")
	}
}

func TestPutUvarintShortBuffer(t *testing.T) {
	_, err := PutUvarint(make([]byte, 0), 128)
	if err != ErrShortBuffer {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
}
