package uci

import "fmt"

// tlvHeaderSize is the type byte plus the length byte.
const tlvHeaderSize = 2

// ParseAppConfigTlvs parses count back-to-back (type, length, value) records.
// The blob must contain exactly count records and nothing else.
func ParseAppConfigTlvs(count int, data []byte) ([]AppConfigTlv, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative parameter count %d", ErrBadParameters, count)
	}
	tlvs := make([]AppConfigTlv, 0, count)
	rest := data
	for i := 0; i < count; i++ {
		if len(rest) < tlvHeaderSize {
			return nil, fmt.Errorf("%w: tlv %d: truncated header", ErrBadParameters, i)
		}
		n := int(rest[1])
		if len(rest) < tlvHeaderSize+n {
			return nil, fmt.Errorf("%w: tlv %d: value needs %d bytes, %d left",
				ErrBadParameters, i, n, len(rest)-tlvHeaderSize)
		}
		value := make([]byte, n)
		copy(value, rest[tlvHeaderSize:tlvHeaderSize+n])
		tlvs = append(tlvs, AppConfigTlv{Type: AppConfigTlvType(rest[0]), Value: value})
		rest = rest[tlvHeaderSize+n:]
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d tlvs", ErrBadParameters, len(rest), count)
	}
	return tlvs, nil
}

// EncodeAppConfigTlvs is the inverse of ParseAppConfigTlvs.
func EncodeAppConfigTlvs(tlvs []AppConfigTlv) ([]byte, error) {
	var buf []byte
	for _, t := range tlvs {
		if len(t.Value) > 0xFF {
			return nil, fmt.Errorf("%w: tlv 0x%02X value too long", ErrBadParameters, uint8(t.Type))
		}
		buf = append(buf, byte(t.Type), byte(len(t.Value)))
		buf = append(buf, t.Value...)
	}
	return buf, nil
}

// EncodeCapTlvs encodes capability records the same way.
func EncodeCapTlvs(tlvs []CapTlv) ([]byte, error) {
	var buf []byte
	for _, t := range tlvs {
		if len(t.Value) > 0xFF {
			return nil, fmt.Errorf("%w: cap 0x%02X value too long", ErrBadParameters, uint8(t.Type))
		}
		buf = append(buf, byte(t.Type), byte(len(t.Value)))
		buf = append(buf, t.Value...)
	}
	return buf, nil
}

// EncodeConfigStatus flattens per-parameter results as (id, status) pairs.
func EncodeConfigStatus(statuses []AppConfigStatus) []byte {
	buf := make([]byte, 0, 2*len(statuses))
	for _, s := range statuses {
		buf = append(buf, byte(s.CfgID), byte(s.Status))
	}
	return buf
}
