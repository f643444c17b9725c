package api

// SearchResult is a ranked match item from /api/search.
type SearchResult struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Snippet  string  `json:"snippet"`
	Score    float64 `json:"score"`
}

// Search executes ranked search across memories.
func (c *Client) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	payload := map[string]any{
		"query": query,
		"limit": limit,
	}
	data, err := c.post("/api/search", payload)
	if err != nil {
		return nil, err
	}
	return decodeList[SearchResult](data)
}
