// Package http provides helpers to call echo handlers in tests.
package http

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

type RequestOption func(req *http.Request) *http.Request

func WithHeader(key string, value string, values ...string) RequestOption {
	return func(req *http.Request) *http.Request {
		req.Header.Add(key, value)
		for _, v := range values {
			req.Header.Add(key, v)
		}
		return req
	}
}

// Param is a path parameter of the route.
type Param struct {
	Name  string
	Value string
}

func request(
	e *echo.Echo, method string, target string, body io.Reader, params []Param, reqopts []RequestOption,
) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	for _, opt := range reqopts {
		req = opt(req)
	}
	resp := httptest.NewRecorder()

	ctx := e.NewContext(req, resp)
	if 0 < len(params) {
		names := make([]string, len(params))
		values := make([]string, len(params))
		for i, p := range params {
			names[i], values[i] = p.Name, p.Value
		}
		ctx.SetParamNames(names...)
		ctx.SetParamValues(values...)
	}
	return ctx, resp
}

func Get(e *echo.Echo, target string, params []Param, reqopts ...RequestOption) (echo.Context, *httptest.ResponseRecorder) {
	return request(e, http.MethodGet, target, nil, params, reqopts)
}
