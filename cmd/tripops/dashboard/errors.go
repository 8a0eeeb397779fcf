package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/pkg/echoutil"
)

// httpError converts errors from queries into errors responded to viewers.
//
//   - login required: 401
//   - invalid ids: 400
//   - errors with HTTP status from the backend: the same status
//   - backend is unreachable: 502
func httpError(err error) error {
	if err == nil {
		return nil
	}
	if rest.IsLoginRequired(err) {
		return echoutil.NewHTTPError(
			http.StatusUnauthorized, "login required. run `tripops login`", err,
		)
	}
	if errors.Is(err, queries.ErrInvalidID) {
		return echoutil.NewHTTPError(http.StatusBadRequest, err.Error(), err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apierr *rest.APIError
	if errors.As(err, &apierr) {
		if apierr.Status != nil {
			return echoutil.NewHTTPError(*apierr.Status, apierr.Error(), err)
		}
		return echoutil.NewHTTPError(http.StatusBadGateway, apierr.Error(), err)
	}
	return err
}
