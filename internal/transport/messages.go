package transport

// Every response carries the provider status code unchanged. Payload
// fields are empty unless Code is zero.

type LastHeightRequest struct{}

type HashRequest struct {
	Hash []byte `cramberry:"1"`
}

type HeightRequest struct {
	Height uint64 `cramberry:"1"`
}

type TransactionRequest struct {
	Hash             []byte `cramberry:"1"`
	RequireConfirmed bool   `cramberry:"2"`
}

type OutputRequest struct {
	Hash             []byte `cramberry:"1"`
	Index            uint32 `cramberry:"2"`
	RequireConfirmed bool   `cramberry:"3"`
}

type HeightResponse struct {
	Code   int32  `cramberry:"1"`
	Height uint64 `cramberry:"2"`
}

type HeaderResponse struct {
	Code   int32  `cramberry:"1"`
	Header []byte `cramberry:"2"`
	Height uint64 `cramberry:"3"`
}

type BlockResponse struct {
	Code   int32  `cramberry:"1"`
	Block  []byte `cramberry:"2"`
	Height uint64 `cramberry:"3"`
}

type TransactionResponse struct {
	Code        int32  `cramberry:"1"`
	Transaction []byte `cramberry:"2"`
	Height      uint64 `cramberry:"3"`
	Position    uint64 `cramberry:"4"`
}

type OutputResponse struct {
	Code   int32  `cramberry:"1"`
	Value  int64  `cramberry:"2"`
	Script []byte `cramberry:"3"`
}
