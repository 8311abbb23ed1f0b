package platform

import (
	"context"
)

type createTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ListTags retrieves all tags via GET /tags/.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	resp, err := c.doRequest(ctx, "GET", "/tags/", nil)
	if err != nil {
		return nil, err
	}

	var tags []Tag
	if err := parseResponse(resp, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag via POST /tags/. Organizer-only.
func (c *Client) CreateTag(ctx context.Context, name, color string) (*Tag, error) {
	resp, err := c.doRequest(ctx, "POST", "/tags/", createTagRequest{
		Name:  name,
		Color: color,
	})
	if err != nil {
		return nil, err
	}

	var tag Tag
	if err := parseResponse(resp, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// PopularTags retrieves the most used tags via GET /events/popular-tags/.
func (c *Client) PopularTags(ctx context.Context) ([]Tag, error) {
	resp, err := c.doRequest(ctx, "GET", "/events/popular-tags/", nil)
	if err != nil {
		return nil, err
	}

	var tags []Tag
	if err := parseResponse(resp, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
