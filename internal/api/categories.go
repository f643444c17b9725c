package api

// ListCategories returns all categories with their memory counts.
func (c *Client) ListCategories() ([]Category, error) {
	data, err := c.get("/api/categories")
	if err != nil {
		return nil, err
	}
	return decodeList[Category](data)
}
