package cache

import "github.com/poiesic/lexquery/core"

// marshalResponse serializes a response using the generated MUS serializer.
func marshalResponse(r *core.Response) []byte {
	bs := make([]byte, core.ResponseMUS.Size(*r))
	core.ResponseMUS.Marshal(*r, bs)
	return bs
}

// unmarshalResponse deserializes a response from its MUS encoding.
func unmarshalResponse(bs []byte) (*core.Response, error) {
	r, _, err := core.ResponseMUS.Unmarshal(bs)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
