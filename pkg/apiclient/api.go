package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return &res, nil
}

// ListPets fetches the public catalog. Category and status are optional
// filters, pass "" to skip.
func (c *Client) ListPets(ctx context.Context, category, status string) ([]Pet, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var pets []Pet
	if err := c.do(ctx, http.MethodGet, path, nil, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (c *Client) GetPet(ctx context.Context, id string) (*Pet, error) {
	var pet Pet
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

// CreateAdoptionRequest submits an adoption request for the given pet.
func (c *Client) CreateAdoptionRequest(ctx context.Context, petID string, notes *string) (*AdoptionRequest, error) {
	body := map[string]interface{}{"product_id": petID}
	if notes != nil {
		body["notes"] = *notes
	}

	var res AdoptionRequest
	if err := c.do(ctx, http.MethodPost, "/api/adoptions", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListAdoptionRequests(ctx context.Context) ([]AdoptionRequest, error) {
	var res []AdoptionRequest
	if err := c.do(ctx, http.MethodGet, "/api/user/adoption-requests", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) AddFavorite(ctx context.Context, petID string) (*Favorite, error) {
	var res Favorite
	if err := c.do(ctx, http.MethodPost, "/api/user/favorites", map[string]string{"product_id": petID}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, favoriteID string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/favorites/"+favoriteID, nil, nil)
}

func (c *Client) ListFavorites(ctx context.Context) ([]Favorite, error) {
	var res []Favorite
	if err := c.do(ctx, http.MethodGet, "/api/user/favorites", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) ListNotifications(ctx context.Context, limit, offset int) ([]Notification, error) {
	path := fmt.Sprintf("/api/notifications?limit=%d&offset=%d", limit, offset)

	var res []Notification
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) UnreadNotifications(ctx context.Context) (int64, error) {
	var res UnreadCount
	if err := c.do(ctx, http.MethodGet, "/api/notifications/unread", nil, &res); err != nil {
		return 0, err
	}
	return res.Unread, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", nil, nil)
}
