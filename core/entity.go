package core

import "strconv"

// Entity is a unique identifier for an entity, 0 is never allocated
type Entity uint64

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
