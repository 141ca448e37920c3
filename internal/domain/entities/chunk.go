package entities

// Chunk is a window over the full transcript text. Offset counts characters, not bytes.
type Chunk struct {
	Index  int    `json:"index"`
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}
