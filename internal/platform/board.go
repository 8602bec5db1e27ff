package platform

import "strings"

// Board is the mainboard identity tuple. Empty fields are absent.
type Board struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Product      string `json:"product,omitempty"`
	Version      string `json:"version,omitempty"`
	Serial       string `json:"serial,omitempty"`
}

// NormalizeBoardValue trims whitespace and one pair of surrounding double
// quotes. An empty result means the field is absent.
func NormalizeBoardValue(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func (b Board) normalized() Board {
	return Board{
		Manufacturer: NormalizeBoardValue(b.Manufacturer),
		Product:      NormalizeBoardValue(b.Product),
		Version:      NormalizeBoardValue(b.Version),
		Serial:       NormalizeBoardValue(b.Serial),
	}
}

// IsZero reports whether no field is present.
func (b Board) IsZero() bool {
	return b == Board{}
}

// Map returns only the present fields, keyed manufacturer/product/version/serial.
func (b Board) Map() map[string]string {
	m := make(map[string]string, 4)
	for k, v := range map[string]string{
		"manufacturer": b.Manufacturer,
		"product":      b.Product,
		"version":      b.Version,
		"serial":       b.Serial,
	} {
		if v != "" {
			m[k] = v
		}
	}
	return m
}

// String is the display line "manufacturer | product | vversion". The serial
// is never displayed.
func (b Board) String() string {
	parts := make([]string, 0, 3)
	if b.Manufacturer != "" {
		parts = append(parts, b.Manufacturer)
	}
	if b.Product != "" {
		parts = append(parts, b.Product)
	}
	if b.Version != "" {
		parts = append(parts, "v"+b.Version)
	}
	return strings.Join(parts, " | ")
}
