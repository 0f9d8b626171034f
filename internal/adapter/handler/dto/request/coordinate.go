package request

type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type DecodeRequest struct {
	Payload string `json:"payload" binding:"required,base64"`
}

type CompareRequest struct {
	A CoordinateRequest `json:"a"`
	B CoordinateRequest `json:"b"`
}
