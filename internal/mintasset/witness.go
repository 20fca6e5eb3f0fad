package mintasset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/veilmint/mintasset/internal/jubjub"
)

// ErrTruncatedWitness is returned when a witness byte string ends before a
// presence flag says more data should follow.
var ErrTruncatedWitness = errors.New("mintasset: truncated witness encoding")

// Witness holds the prover's private Mint-Asset inputs. Both fields are
// optional: a caller building a circuit assignment for verification only
// (no witness available) passes an empty Witness, and Write/Read round-trip
// that absence instead of requiring placeholder zero values.
type Witness struct {
	ProofGenerationKey  *ProofGenerationKey
	PublicKeyRandomness *jubjub.Scalar
}

const (
	presenceAbsent  = 0
	presencePresent = 1
)

// bytesEncoding is the 64-byte (ak || nsk) encoding of a ProofGenerationKey.
func (k *ProofGenerationKey) bytesEncoding() [64]byte {
	var out [64]byte
	akBytes := k.Ak.Compressed()
	nskBytes := k.Nsk.BytesLE()
	copy(out[0:32], akBytes[:])
	copy(out[32:64], nskBytes[:])
	return out
}

func proofGenerationKeyFromBytes(b []byte) (*ProofGenerationKey, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("mintasset: proof generation key must be 64 bytes, got %d", len(b))
	}
	ak, err := jubjub.SetCompressed(b[0:32])
	if err != nil {
		return nil, fmt.Errorf("mintasset: decode ak: %w", err)
	}
	var nsk jubjub.Scalar
	if err := nsk.SetBytesLE(b[32:64]); err != nil {
		return nil, fmt.Errorf("mintasset: decode nsk: %w", err)
	}
	return &ProofGenerationKey{Ak: ak, Nsk: nsk}, nil
}

// Write serializes w as a sequence of presence-tagged fields: one byte flag
// followed by the field's fixed-width encoding when the flag is 1, nothing
// otherwise. It never panics; all failures are returned as errors.
func (w *Witness) Write(dst io.Writer) error {
	if err := writePresent(dst, w.ProofGenerationKey != nil); err != nil {
		return err
	}
	if w.ProofGenerationKey != nil {
		enc := w.ProofGenerationKey.bytesEncoding()
		if _, err := dst.Write(enc[:]); err != nil {
			return fmt.Errorf("mintasset: write proof generation key: %w", err)
		}
	}

	if err := writePresent(dst, w.PublicKeyRandomness != nil); err != nil {
		return err
	}
	if w.PublicKeyRandomness != nil {
		enc := w.PublicKeyRandomness.BytesLE()
		if _, err := dst.Write(enc[:]); err != nil {
			return fmt.Errorf("mintasset: write randomizer: %w", err)
		}
	}
	return nil
}

// ReadWitness deserializes a Witness written by Write. It returns
// ErrTruncatedWitness if the byte stream ends mid-field, and never panics.
func ReadWitness(src io.Reader) (*Witness, error) {
	var w Witness

	present, err := readPresent(src)
	if err != nil {
		return nil, err
	}
	if present {
		var buf [64]byte
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return nil, ErrTruncatedWitness
		}
		pgk, err := proofGenerationKeyFromBytes(buf[:])
		if err != nil {
			return nil, err
		}
		w.ProofGenerationKey = pgk
	}

	present, err = readPresent(src)
	if err != nil {
		return nil, err
	}
	if present {
		var buf [32]byte
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return nil, ErrTruncatedWitness
		}
		var ar jubjub.Scalar
		if err := ar.SetBytesLE(buf[:]); err != nil {
			return nil, fmt.Errorf("mintasset: decode randomizer: %w", err)
		}
		w.PublicKeyRandomness = &ar
	}

	return &w, nil
}

func writePresent(dst io.Writer, present bool) error {
	flag := byte(presenceAbsent)
	if present {
		flag = presencePresent
	}
	if _, err := dst.Write([]byte{flag}); err != nil {
		return fmt.Errorf("mintasset: write presence flag: %w", err)
	}
	return nil
}

func readPresent(src io.Reader) (bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return false, ErrTruncatedWitness
	}
	switch buf[0] {
	case presenceAbsent:
		return false, nil
	case presencePresent:
		return true, nil
	default:
		return false, fmt.Errorf("mintasset: invalid presence flag %d", buf[0])
	}
}

// MarshalBinary implements encoding.BinaryMarshaler, bridging the
// presence-tagged wire format to a single byte slice for serde-style
// callers that expect one blob rather than a stream.
func (w *Witness) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Like Write/Read, it
// reports malformed input as an error and never panics, so a corrupt or
// adversarial blob cannot crash a deserializing visitor.
func (w *Witness) UnmarshalBinary(data []byte) error {
	parsed, err := ReadWitness(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*w = *parsed
	return nil
}
