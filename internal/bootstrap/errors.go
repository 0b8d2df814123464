package bootstrap

import "errors"

var (
	ErrMissingClient       = errors.New("client id and client secret are required")
	ErrTimeout             = errors.New("timed out waiting for the authorization callback")
	ErrMissingRefreshToken = errors.New("no refresh_token in the token response; revoke the app's access and run again")
)
