package history

import (
	"encoding/json"

	"powerplant-dispatch/internal/result"
)

func marshalAllocation(alloc []result.Allocation) ([]byte, error) {
	if alloc == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(alloc)
}

func unmarshalAllocation(raw []byte) ([]result.Allocation, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var alloc []result.Allocation
	if err := json.Unmarshal(raw, &alloc); err != nil {
		return nil, err
	}
	return alloc, nil
}
