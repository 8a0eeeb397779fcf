package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hitrip/tripops/pkg/api/types/staff"
)

func (c *client) Login(ctx context.Context, cred staff.Login) (staff.UserDetail, error) {
	// the backend answers the user as is, or wrapped in "user".
	resp := struct {
		User *staff.UserDetail `json:"user"`
		staff.UserDetail
	}{}
	if err := c.request(ctx, http.MethodPost, c.apipath("api", "auth", "login"), nil, cred, &resp); err != nil {
		return staff.UserDetail{}, err
	}
	if resp.User != nil {
		return *resp.User, nil
	}
	return resp.UserDetail, nil
}

func (c *client) Logout(ctx context.Context) error {
	err := c.request(ctx, http.MethodPost, c.apipath("api", "auth", "logout"), nil, nil, nil)
	if err != nil && !IsLoginRequired(err) {
		return err
	}
	c.jar.Clear()
	return nil
}

func (c *client) Profile(ctx context.Context) (staff.UserDetail, error) {
	u := staff.UserDetail{}
	if err := c.request(ctx, http.MethodGet, c.apipath("api", "auth", "profile"), nil, nil, &u); err != nil {
		return staff.UserDetail{}, err
	}
	return u, nil
}

func (c *client) ListStaff(ctx context.Context, approved *bool) ([]staff.UserDetail, error) {
	q := url.Values{}
	if approved != nil {
		q.Set("is_approved", strconv.FormatBool(*approved))
	}
	return getList[staff.UserDetail](ctx, c, c.apipath("api", "auth", "staff"), q)
}

func (c *client) ApproveStaff(ctx context.Context, userId int) (staff.UserDetail, error) {
	u := staff.UserDetail{}
	if err := c.request(
		ctx, http.MethodPost,
		c.apipath("api", "auth", "staff", strconv.Itoa(userId), "approve"),
		nil, nil, &u,
	); err != nil {
		return staff.UserDetail{}, err
	}
	return u, nil
}
