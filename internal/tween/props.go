package tween

import "sort"

// Props is a flat set of named numeric properties.
type Props map[string]float64

// Clone returns an independent copy of p.
func (p Props) Clone() Props {
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// CopyFrom sets every property of src on p, adding keys p lacks, and
// returns p.
func (p Props) CopyFrom(src Props) Props {
	for k, v := range src {
		p[k] = v
	}
	return p
}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
