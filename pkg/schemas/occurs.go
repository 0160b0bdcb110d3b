/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import "strconv"

// Occurs is the occurrence count bound used by child rules (minimum and
// maximum occurs).
type Occurs uint16

// Unbounded occurs value
const Occurs_Unbounded = Occurs(65535)

func (o Occurs) String() string {
	switch o {
	case Occurs_Unbounded:
		return "unbounded"
	default:
		const base = 10
		return strconv.FormatUint(uint64(o), base)
	}
}

func (o Occurs) MarshalJSON() ([]byte, error) {
	s := o.String()
	if o == Occurs_Unbounded {
		s = strconv.Quote(s)
	}
	return []byte(s), nil
}

func (o *Occurs) UnmarshalJSON(data []byte) (err error) {
	switch string(data) {
	case strconv.Quote(Occurs_Unbounded.String()):
		*o = Occurs_Unbounded
		return nil
	default:
		var i uint64
		const base, wordBits = 10, 16
		i, err = strconv.ParseUint(string(data), base, wordBits)
		if err == nil {
			*o = Occurs(i)
		}
		return err
	}
}
