package layerbom

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Digest is a checksum along with the name of the algorithm that produced
// it. The textual form is "algo:hex", e.g. "sha256:5216338b40...".
//
// The zero Digest means "no checksum recorded".
type Digest struct {
	algo     string
	checksum []byte
}

// Checksum returns the raw checksum bytes.
func (d Digest) Checksum() []byte { return d.checksum }

// Algorithm returns the lower-cased algorithm name, e.g. "sha1".
func (d Digest) Algorithm() string { return d.algo }

// Hex returns the hex encoding of the checksum.
func (d Digest) Hex() string { return hex.EncodeToString(d.checksum) }

// IsZero reports whether the Digest is unset.
func (d Digest) IsZero() bool { return d.algo == "" && len(d.checksum) == 0 }

func (d Digest) String() string {
	b, _ := d.MarshalText()
	return string(b)
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	el := hex.EncodedLen(len(d.checksum))
	hl := len(d.algo) + 1
	b := make([]byte, hl+el)
	copy(b, d.algo)
	b[len(d.algo)] = ':'
	hex.Encode(b[hl:], d.checksum)
	return b, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The empty string decodes to the zero Digest.
func (d *Digest) UnmarshalText(t []byte) error {
	if len(t) == 0 {
		*d = Digest{}
		return nil
	}
	i := bytes.IndexByte(t, ':')
	if i <= 0 {
		return fmt.Errorf("invalid digest format: %q", string(t))
	}
	algo := strings.ToLower(string(t[:i]))
	t = t[i+1:]
	sum := make([]byte, hex.DecodedLen(len(t)))
	if _, err := hex.Decode(sum, t); err != nil {
		return fmt.Errorf("invalid digest format: %w", err)
	}
	d.algo = algo
	d.checksum = sum
	return nil
}

// NewDigest returns a Digest for the provided algorithm and sum.
func NewDigest(algo string, sum []byte) Digest {
	return Digest{
		algo:     strings.ToLower(algo),
		checksum: sum,
	}
}

// ParseDigest parses the "algo:hex" form.
func ParseDigest(digest string) (Digest, error) {
	var d Digest
	if err := d.UnmarshalText([]byte(digest)); err != nil {
		return Digest{}, err
	}
	return d, nil
}

// MustParseDigest is like [ParseDigest] but panics on error.
func MustParseDigest(digest string) Digest {
	d, err := ParseDigest(digest)
	if err != nil {
		panic(err)
	}
	return d
}
