package api

// GetStats returns the aggregate counts shown in the stats bar.
func (c *Client) GetStats() (*Stats, error) {
	data, err := c.get("/api/stats")
	if err != nil {
		return nil, err
	}
	return decodeOne[Stats](data)
}
