package api

import "fmt"

// --- Memory Methods ---

// ListMemories returns memories matching the given filters. Supported
// params: category, q, tag, limit, offset.
func (c *Client) ListMemories(params QueryParams) ([]Memory, error) {
	data, err := c.get(buildQuery("/api/memories", params))
	if err != nil {
		return nil, err
	}
	return decodeList[Memory](data)
}

// GetMemory fetches a single memory by id.
func (c *Client) GetMemory(id string) (*Memory, error) {
	data, err := c.get(fmt.Sprintf("/api/memories/%s", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Memory](data)
}

// UpdateMemory patches a memory.
func (c *Client) UpdateMemory(id string, input UpdateMemoryInput) (*Memory, error) {
	data, err := c.patch(fmt.Sprintf("/api/memories/%s", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Memory](data)
}

// DeleteMemory removes a memory.
func (c *Client) DeleteMemory(id string) error {
	_, err := c.del(fmt.Sprintf("/api/memories/%s", id))
	return err
}

// BulkTagMemories adds or removes tags on a set of memories. Op is "add" or
// "remove".
func (c *Client) BulkTagMemories(input BulkTagInput) (*BulkTagResult, error) {
	data, err := c.post("/api/memories/bulk/tags", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[BulkTagResult](data)
}
